package event_test

import (
	"log/slog"
	"os"
	"time"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		store   *memstore.MemStorage
		service *event.Service
		start   time.Time
		mine    *client.Client
		theirs  *client.Client
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		store = memstore.New()
		service = event.NewService(store.Events(), store.Clients(), logger)
		start = time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)

		mine = &client.Client{UserID: 1, Name: "Ada", Email: "ada@example.com"}
		Expect(store.Clients().Create(mine)).To(Succeed())
		theirs = &client.Client{UserID: 2, Name: "Grace", Email: "grace@example.com"}
		Expect(store.Clients().Create(theirs)).To(Succeed())
	})

	It("creates an event linked to an own client", func() {
		end := start.Add(4 * time.Hour)
		e, err := service.CreateEvent(1, event.CreateEventDTO{Title: "Wedding", Date: start, EndDate: &end, ClientID: &mine.ID})
		Expect(err).NotTo(HaveOccurred())
		Expect(e.ID).To(BeNumerically(">", 0))
		Expect(*e.ClientID).To(Equal(mine.ID))
	})

	It("rejects an end before the start", func() {
		end := start.Add(-time.Hour)
		_, err := service.CreateEvent(1, event.CreateEventDTO{Title: "Wedding", Date: start, EndDate: &end})
		Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())
	})

	It("refuses another user's client", func() {
		_, err := service.CreateEvent(1, event.CreateEventDTO{Title: "Wedding", Date: start, ClientID: &theirs.ID})
		Expect(internal.IsErrorType(err, internal.ErrorTypeForbidden)).To(BeTrue())
	})

	It("checks the merged result on update", func() {
		end := start.Add(2 * time.Hour)
		e, err := service.CreateEvent(1, event.CreateEventDTO{Title: "Wedding", Date: start, EndDate: &end})
		Expect(err).NotTo(HaveOccurred())

		later := end.Add(time.Hour)
		_, err = service.UpdateEvent(e.ID, 1, event.Patch{Date: &later})
		Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())

		got, err := service.GetOwned(e.ID, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Date).To(BeTemporally("==", start))
	})

	It("hides events from other users", func() {
		e, err := service.CreateEvent(1, event.CreateEventDTO{Title: "Wedding", Date: start})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.GetOwned(e.ID, 2)
		Expect(internal.IsErrorType(err, internal.ErrorTypeForbidden)).To(BeTrue())

		list, err := service.ListEvents(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())
	})
})
