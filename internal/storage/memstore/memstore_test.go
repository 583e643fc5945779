package memstore_test

import (
	"errors"
	"sync"
	"time"

	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	"github.com/matteocalo/photodesk/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("MemStorage", func() {
	var store *memstore.MemStorage

	BeforeEach(func() {
		store = memstore.New()
	})

	newClient := func(owner int64) *client.Client {
		c := &client.Client{UserID: owner, Name: "Ada", Email: "ada@example.com"}
		Expect(store.Clients().Create(c)).To(Succeed())
		return c
	}

	newJob := func(owner int64, clientID *int64) *photojob.PhotoJob {
		j := &photojob.PhotoJob{UserID: owner, ClientID: clientID, Title: "Wedding", Status: photojob.StatusTBC}
		Expect(store.PhotoJobs().Create(j)).To(Succeed())
		return j
	}

	Describe("id allocation", func() {
		It("assigns strictly increasing ids per entity type, starting at 1", func() {
			c1 := newClient(1)
			c2 := newClient(1)
			j1 := newJob(1, &c1.ID)

			Expect(c1.ID).To(Equal(int64(1)))
			Expect(c2.ID).To(Equal(int64(2)))
			Expect(j1.ID).To(Equal(int64(1)))
		})

		It("never reuses an id after a delete", func() {
			c1 := newClient(1)
			Expect(store.Clients().Delete(c1.ID)).To(Succeed())

			c2 := newClient(1)
			Expect(c2.ID).To(Equal(int64(2)))
		})

		It("hands out unique ids under concurrent creates", func() {
			const n = 50
			ids := make(chan int64, n)
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					c := &client.Client{UserID: 1, Name: "c", Email: "c@example.com"}
					Expect(store.Clients().Create(c)).To(Succeed())
					ids <- c.ID
				}()
			}
			wg.Wait()
			close(ids)

			seen := map[int64]bool{}
			for id := range ids {
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
			Expect(seen).To(HaveLen(n))
		})
	})

	Describe("reads", func() {
		It("returns the domain not-found sentinel", func() {
			_, err := store.PhotoJobs().GetByID(99)
			Expect(errors.Is(err, photojob.ErrNotFound)).To(BeTrue())

			_, err = store.Clients().GetByID(99)
			Expect(errors.Is(err, client.ErrNotFound)).To(BeTrue())
		})

		It("returns copies that callers cannot use to mutate the store", func() {
			j := newJob(1, nil)
			got, err := store.PhotoJobs().GetByID(j.ID)
			Expect(err).NotTo(HaveOccurred())
			got.Title = "changed"

			again, err := store.PhotoJobs().GetByID(j.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Title).To(Equal("Wedding"))
		})

		It("lists only the owner's rows in id order", func() {
			newClient(1)
			newClient(2)
			newClient(1)

			list, err := store.Clients().ListByOwner(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].ID).To(Equal(int64(1)))
			Expect(list[1].ID).To(Equal(int64(3)))

			other, err := store.Clients().ListByOwner(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(other).To(BeEmpty())
		})
	})

	Describe("partial updates", func() {
		It("keeps every field the patch leaves out", func() {
			c := newClient(1)
			j := &photojob.PhotoJob{
				UserID:       1,
				ClientID:     &c.ID,
				Title:        "Wedding",
				Description:  ptr("Church and reception"),
				Status:       photojob.StatusTBC,
				Amount:       ptr(1200.0),
				DownloadLink: ptr("https://example.com/gallery"),
				EquipmentIDs: []int64{3, 4},
			}
			Expect(store.PhotoJobs().Create(j)).To(Succeed())

			status := photojob.StatusConfirmed
			updated, err := store.PhotoJobs().Update(j.ID, photojob.Patch{Status: &status})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Status).To(Equal(photojob.StatusConfirmed))
			Expect(updated.Title).To(Equal("Wedding"))
			Expect(*updated.Description).To(Equal("Church and reception"))
			Expect(*updated.Amount).To(Equal(1200.0))
			Expect(*updated.DownloadLink).To(Equal("https://example.com/gallery"))
			Expect(*updated.ClientID).To(Equal(c.ID))
			Expect(updated.EquipmentIDs).To(Equal([]int64{3, 4}))
			Expect(updated.UserID).To(Equal(int64(1)))
		})

		It("stamps updated_at from the clock", func() {
			t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
			now := t0
			store.WithClock(func() time.Time { return now })

			j := newJob(1, nil)
			Expect(j.UpdatedAt).To(Equal(t0))

			now = t0.Add(time.Hour)
			updated, err := store.PhotoJobs().Update(j.ID, photojob.Patch{Title: ptr("Engagement")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CreatedAt).To(Equal(t0))
			Expect(updated.UpdatedAt).To(Equal(t0.Add(time.Hour)))
		})

		It("fails on a missing row", func() {
			_, err := store.Clients().Update(42, client.Patch{Name: ptr("x")})
			Expect(errors.Is(err, client.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("photo job delete", func() {
		It("removes the job's comments and leaves other jobs alone", func() {
			j1 := newJob(1, nil)
			j2 := newJob(1, nil)
			for _, jobID := range []int64{j1.ID, j1.ID, j2.ID} {
				Expect(store.Comments().Create(&comment.Comment{JobID: jobID, Content: "hi"})).To(Succeed())
			}

			Expect(store.PhotoJobs().Delete(j1.ID)).To(Succeed())

			_, err := store.PhotoJobs().GetByID(j1.ID)
			Expect(errors.Is(err, photojob.ErrNotFound)).To(BeTrue())

			gone, err := store.Comments().ListByJob(j1.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(gone).To(BeEmpty())

			kept, err := store.Comments().ListByJob(j2.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(kept).To(HaveLen(1))
		})

		It("is a no-op for an unknown id", func() {
			Expect(store.PhotoJobs().Delete(7)).To(Succeed())
		})
	})

	Describe("client delete", func() {
		It("nulls client_id on jobs and events that referenced it", func() {
			c := newClient(1)
			other := newClient(1)
			j := newJob(1, &c.ID)
			kept := newJob(1, &other.ID)
			e := &event.Event{UserID: 1, Title: "Shoot", Date: time.Now(), ClientID: &c.ID}
			Expect(store.Events().Create(e)).To(Succeed())

			Expect(store.Clients().Delete(c.ID)).To(Succeed())

			got, err := store.PhotoJobs().GetByID(j.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ClientID).To(BeNil())

			gotKept, err := store.PhotoJobs().GetByID(kept.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*gotKept.ClientID).To(Equal(other.ID))

			gotEvent, err := store.Events().GetByID(e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotEvent.ClientID).To(BeNil())
		})
	})

	Describe("comments", func() {
		It("lists newest first and breaks timestamp ties by id", func() {
			t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
			now := t0
			store.WithClock(func() time.Time { return now })
			j := newJob(1, nil)

			first := &comment.Comment{JobID: j.ID, Content: "first"}
			Expect(store.Comments().Create(first)).To(Succeed())
			tie := &comment.Comment{JobID: j.ID, Content: "same second"}
			Expect(store.Comments().Create(tie)).To(Succeed())
			now = t0.Add(time.Minute)
			latest := &comment.Comment{JobID: j.ID, Content: "latest"}
			Expect(store.Comments().Create(latest)).To(Succeed())

			list, err := store.Comments().ListByJob(j.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].ID).To(Equal(latest.ID))
			Expect(list[1].ID).To(Equal(tie.ID))
			Expect(list[2].ID).To(Equal(first.ID))
		})
	})

	Describe("users", func() {
		It("rejects a duplicate username or email", func() {
			Expect(store.Users().Create(&user.User{Username: "ada", Email: "ada@example.com"})).To(Succeed())

			err := store.Users().Create(&user.User{Username: "ada", Email: "other@example.com"})
			Expect(errors.Is(err, user.ErrDuplicate)).To(BeTrue())

			err = store.Users().Create(&user.User{Username: "grace", Email: "ada@example.com"})
			Expect(errors.Is(err, user.ErrDuplicate)).To(BeTrue())
		})

		It("finds by username and email", func() {
			u := &user.User{Username: "ada", Email: "ada@example.com"}
			Expect(store.Users().Create(u)).To(Succeed())

			byName, err := store.Users().GetByUsername("ada")
			Expect(err).NotTo(HaveOccurred())
			Expect(byName.ID).To(Equal(u.ID))

			byEmail, err := store.Users().GetByEmail("ada@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail.ID).To(Equal(u.ID))

			_, err = store.Users().GetByEmail("nobody@example.com")
			Expect(errors.Is(err, user.ErrNotFound)).To(BeTrue())
		})
	})
})
