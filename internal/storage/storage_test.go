package storage_test

import (
	"context"
	"errors"
	"time"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/storage"
	"github.com/matteocalo/photodesk/internal/team"
	"github.com/matteocalo/photodesk/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T { return &v }

// Every backend must honour the same repository contract.
var backends = map[string]internal.DatabaseConfig{
	"memory": {Driver: internal.DriverMemory},
	"sqlite": {Driver: internal.DriverSQLite, Source: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1},
}

var _ = Describe("Open", func() {
	It("rejects an unknown driver", func() {
		_, err := storage.Open(internal.DatabaseConfig{Driver: "mysql"})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Repository contract", func() {
	for name, cfg := range backends {
		name, cfg := name, cfg

		Context(name, func() {
			var store storage.Manager

			BeforeEach(func() {
				var err error
				store, err = storage.Open(cfg)
				Expect(err).NotTo(HaveOccurred())
				DeferCleanup(store.Close)
			})

			seedUser := func(username string) *user.User {
				GinkgoHelper()
				u := &user.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Role: user.RolePhotographer}
				Expect(store.Users().Create(u)).To(Succeed())
				return u
			}

			seedClient := func(owner int64) *client.Client {
				GinkgoHelper()
				c := &client.Client{UserID: owner, Name: "Ada", Email: "ada@example.com"}
				Expect(store.Clients().Create(c)).To(Succeed())
				return c
			}

			seedJob := func(owner int64, clientID *int64) *photojob.PhotoJob {
				GinkgoHelper()
				j := &photojob.PhotoJob{UserID: owner, ClientID: clientID, Title: "Wedding", Status: photojob.StatusTBC}
				Expect(store.PhotoJobs().Create(j)).To(Succeed())
				return j
			}

			It("pings", func() {
				Expect(store.Ping(context.Background())).To(Succeed())
			})

			It("assigns increasing ids and stamps created_at", func() {
				u := seedUser("ada")
				first := seedClient(u.ID)
				second := seedClient(u.ID)

				Expect(first.ID).To(BeNumerically(">", 0))
				Expect(second.ID).To(BeNumerically(">", first.ID))
				Expect(first.CreatedAt).NotTo(BeZero())
			})

			It("returns not-found sentinels for every entity", func() {
				_, err := store.Users().GetByID(404)
				Expect(errors.Is(err, user.ErrNotFound)).To(BeTrue())
				_, err = store.Clients().GetByID(404)
				Expect(errors.Is(err, client.ErrNotFound)).To(BeTrue())
				_, err = store.Equipment().GetByID(404)
				Expect(errors.Is(err, equipment.ErrNotFound)).To(BeTrue())
				_, err = store.Events().GetByID(404)
				Expect(errors.Is(err, event.ErrNotFound)).To(BeTrue())
				_, err = store.Teams().GetByID(404)
				Expect(errors.Is(err, team.ErrNotFound)).To(BeTrue())
				_, err = store.PhotoJobs().GetByID(404)
				Expect(errors.Is(err, photojob.ErrNotFound)).To(BeTrue())
				_, err = store.Comments().GetByID(404)
				Expect(errors.Is(err, comment.ErrNotFound)).To(BeTrue())
			})

			It("rejects duplicate usernames", func() {
				seedUser("ada")
				err := store.Users().Create(&user.User{Username: "ada", Email: "other@example.com", PasswordHash: "x", Role: user.RolePhotographer})
				Expect(errors.Is(err, user.ErrDuplicate)).To(BeTrue())
			})

			It("scopes lists to the owner", func() {
				a := seedUser("ada")
				b := seedUser("grace")
				seedClient(a.ID)
				seedClient(b.ID)
				seedClient(a.ID)

				list, err := store.Clients().ListByOwner(a.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(list).To(HaveLen(2))
				Expect(list[0].ID).To(BeNumerically("<", list[1].ID))
				for _, c := range list {
					Expect(c.UserID).To(Equal(a.ID))
				}
			})

			It("keeps untouched fields on a partial job update", func() {
				u := seedUser("ada")
				c := seedClient(u.ID)
				j := &photojob.PhotoJob{
					UserID:       u.ID,
					ClientID:     &c.ID,
					Title:        "Wedding",
					Description:  ptr("Church"),
					Status:       photojob.StatusTBC,
					Amount:       ptr(900.0),
					Password:     ptr("$2a$04$hash"),
					EquipmentIDs: []int64{7},
				}
				Expect(store.PhotoJobs().Create(j)).To(Succeed())

				status := photojob.StatusInProgress
				_, err := store.PhotoJobs().Update(j.ID, photojob.Patch{Status: &status})
				Expect(err).NotTo(HaveOccurred())

				got, err := store.PhotoJobs().GetByID(j.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Status).To(Equal(photojob.StatusInProgress))
				Expect(got.Title).To(Equal("Wedding"))
				Expect(*got.Description).To(Equal("Church"))
				Expect(*got.Amount).To(Equal(900.0))
				Expect(*got.Password).To(Equal("$2a$04$hash"))
				Expect(*got.ClientID).To(Equal(c.ID))
				Expect(got.EquipmentIDs).To(Equal([]int64{7}))
			})

			It("deletes a job's comments with the job", func() {
				u := seedUser("ada")
				j := seedJob(u.ID, nil)
				other := seedJob(u.ID, nil)
				Expect(store.Comments().Create(&comment.Comment{JobID: j.ID, Content: "a"})).To(Succeed())
				Expect(store.Comments().Create(&comment.Comment{JobID: j.ID, Content: "b", IsFromClient: true})).To(Succeed())
				Expect(store.Comments().Create(&comment.Comment{JobID: other.ID, Content: "c"})).To(Succeed())

				Expect(store.PhotoJobs().Delete(j.ID)).To(Succeed())

				left, err := store.Comments().ListByJob(j.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(left).To(BeEmpty())

				kept, err := store.Comments().ListByJob(other.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(kept).To(HaveLen(1))
			})

			It("detaches jobs and events from a deleted client", func() {
				u := seedUser("ada")
				c := seedClient(u.ID)
				j := seedJob(u.ID, &c.ID)
				e := &event.Event{UserID: u.ID, Title: "Shoot", Date: time.Now().UTC(), ClientID: &c.ID, EquipmentIDs: []int64{1, 2}}
				Expect(store.Events().Create(e)).To(Succeed())

				Expect(store.Clients().Delete(c.ID)).To(Succeed())

				_, err := store.Clients().GetByID(c.ID)
				Expect(errors.Is(err, client.ErrNotFound)).To(BeTrue())

				gotJob, err := store.PhotoJobs().GetByID(j.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(gotJob.ClientID).To(BeNil())

				gotEvent, err := store.Events().GetByID(e.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(gotEvent.ClientID).To(BeNil())
				Expect(gotEvent.EquipmentIDs).To(Equal([]int64{1, 2}))
			})

			It("lists comments newest first", func() {
				u := seedUser("ada")
				j := seedJob(u.ID, nil)
				var ids []int64
				for _, content := range []string{"one", "two", "three"} {
					c := &comment.Comment{JobID: j.ID, Content: content}
					Expect(store.Comments().Create(c)).To(Succeed())
					ids = append(ids, c.ID)
					time.Sleep(2 * time.Millisecond)
				}

				list, err := store.Comments().ListByJob(j.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(list).To(HaveLen(3))
				Expect([]int64{list[0].ID, list[1].ID, list[2].ID}).To(Equal([]int64{ids[2], ids[1], ids[0]}))
			})

			It("updates a comment and keeps its author flag", func() {
				u := seedUser("ada")
				j := seedJob(u.ID, nil)
				c := &comment.Comment{JobID: j.ID, Content: "orig", IsFromClient: true}
				Expect(store.Comments().Create(c)).To(Succeed())

				updated, err := store.Comments().Update(c.ID, comment.Patch{Content: ptr("edited")})
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Content).To(Equal("edited"))
				Expect(updated.IsFromClient).To(BeTrue())
			})

			It("round-trips equipment, teams and events", func() {
				u := seedUser("ada")

				eq := &equipment.Equipment{UserID: u.ID, Name: "Body", Type: "camera", Status: equipment.StatusAvailable}
				Expect(store.Equipment().Create(eq)).To(Succeed())
				updatedEq, err := store.Equipment().Update(eq.ID, equipment.Patch{Status: ptr(equipment.StatusMaintenance)})
				Expect(err).NotTo(HaveOccurred())
				Expect(updatedEq.Status).To(Equal(equipment.StatusMaintenance))
				Expect(updatedEq.Name).To(Equal("Body"))

				t := &team.Team{UserID: u.ID, Name: "Studio"}
				Expect(store.Teams().Create(t)).To(Succeed())
				Expect(store.Teams().Delete(t.ID)).To(Succeed())
				_, err = store.Teams().GetByID(t.ID)
				Expect(errors.Is(err, team.ErrNotFound)).To(BeTrue())

				e := &event.Event{UserID: u.ID, Title: "Shoot", Date: time.Now().UTC()}
				Expect(store.Events().Create(e)).To(Succeed())
				updatedEvent, err := store.Events().Update(e.ID, event.Patch{Notes: ptr("bring tripod")})
				Expect(err).NotTo(HaveOccurred())
				Expect(*updatedEvent.Notes).To(Equal("bring tripod"))
				Expect(updatedEvent.Title).To(Equal("Shoot"))
			})
		})
	}
})
