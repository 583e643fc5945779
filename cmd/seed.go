package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/storage"
	"github.com/matteocalo/photodesk/internal/user"
	"github.com/matteocalo/photodesk/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a demo photographer, a client and a password-protected job.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		if cfg.Database.Driver == internal.DriverMemory {
			log.Fatalf("seeding the memory driver has no effect; configure sqlite or postgres")
		}

		store, err := storage.Open(cfg.Database)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}
		defer store.Close()

		if err := seed(store, password.NewHasher(cfg.Security.BCryptCost)); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	},
}

const (
	seedUsername = "demo"
	seedEmail    = "demo@photodesk.local"
	seedPassword = "password"
	seedPortal   = "portal123"
)

func seed(store storage.Manager, hasher *password.Hasher) error {
	lg := logger.L()

	existing, err := store.Users().GetByUsername(seedUsername)
	switch {
	case err == nil:
		fmt.Println("demo user already exists:", existing.Email)
		return nil
	case !errors.Is(err, user.ErrNotFound):
		return fmt.Errorf("failed to look up demo user: %w", err)
	}

	users := user.NewService(store.Users(), hasher, lg)
	u, err := users.Register(user.RegisterDTO{
		Username: seedUsername,
		Email:    seedEmail,
		Password: seedPassword,
		Role:     user.RolePhotographer,
	})
	if err != nil {
		return err
	}
	fmt.Println("Seeded demo user:", u.Email)

	clients := client.NewService(store.Clients(), lg)
	c, err := clients.CreateClient(u.ID, client.CreateClientDTO{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if err != nil {
		return err
	}

	comments := comment.NewService(store.Comments(), lg)
	jobs := photojob.NewService(store.PhotoJobs(), store.Clients(), comments, hasher, nil, lg)

	jobDate := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	portal := seedPortal
	j, err := jobs.CreateJob(u.ID, photojob.CreatePhotoJobDTO{
		ClientID: &c.ID,
		Title:    "Wedding shoot",
		Status:   string(photojob.StatusConfirmed),
		JobDate:  &jobDate,
		Password: &portal,
	})
	if err != nil {
		return err
	}

	if _, err := comments.Post(j.ID, "Looking forward to it!", true); err != nil {
		return err
	}

	fmt.Printf("Seeded job %d for client %q (portal password %q)\n", j.ID, c.Name, seedPortal)
	return nil
}
