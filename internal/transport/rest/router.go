package rest

import (
	"log/slog"

	"github.com/go-chi/chi"

	"github.com/matteocalo/photodesk/internal/access"
	"github.com/matteocalo/photodesk/internal/auth"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/team"
	"github.com/matteocalo/photodesk/internal/transport/middleware"
	"github.com/matteocalo/photodesk/internal/transport/swagger"
	"github.com/matteocalo/photodesk/internal/user"
)

type Handlers struct {
	Health    *HealthHandler
	Auth      *auth.Handler
	User      *user.Handler
	Client    *client.Handler
	Equipment *equipment.Handler
	Event     *event.Handler
	Team      *team.Handler
	PhotoJob  *photojob.Handler
	Access    *access.Handler
}

// RegisterAllRoutes mounts the API under /api. OpenAPI is nil-safe: without a
// document the swagger routes are skipped.
func RegisterAllRoutes(router chi.Router, h Handlers, openAPI []byte, logger *slog.Logger) {
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	if openAPI != nil {
		router.Get(swagger.DocumentPath, swagger.DocumentHandler(openAPI))
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.healthCheckHandler)
		r.Get("/ping", h.Health.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.User.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
		})

		// Client portal: no bearer token, gated by the job password.
		r.Post("/photo-jobs/{id}/verify-password", h.Access.VerifyPassword)
		r.Route("/client-portal/{jobId}", func(pr chi.Router) {
			pr.Get("/", h.Access.GetPortalView)
			pr.Get("/comments", h.Access.ListPortalComments)
			pr.Post("/comments", h.Access.PostClientComment)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Route("/clients", func(cr chi.Router) {
				cr.Get("/", h.Client.ListClients)
				cr.Post("/", h.Client.CreateClient)
				cr.Get("/{id}", h.Client.GetClient)
				cr.Patch("/{id}", h.Client.UpdateClient)
				cr.Delete("/{id}", h.Client.DeleteClient)
			})

			pr.Route("/equipment", func(er chi.Router) {
				er.Get("/", h.Equipment.ListEquipment)
				er.Post("/", h.Equipment.CreateEquipment)
				er.Get("/{id}", h.Equipment.GetEquipment)
				er.Patch("/{id}", h.Equipment.UpdateEquipment)
				er.Delete("/{id}", h.Equipment.DeleteEquipment)
			})

			pr.Route("/events", func(er chi.Router) {
				er.Get("/", h.Event.ListEvents)
				er.Post("/", h.Event.CreateEvent)
				er.Get("/{id}", h.Event.GetEvent)
				er.Patch("/{id}", h.Event.UpdateEvent)
				er.Delete("/{id}", h.Event.DeleteEvent)
			})

			pr.Route("/teams", func(tr chi.Router) {
				tr.Get("/", h.Team.ListTeams)
				tr.Post("/", h.Team.CreateTeam)
				tr.Get("/{id}", h.Team.GetTeam)
				tr.Patch("/{id}", h.Team.UpdateTeam)
				tr.Delete("/{id}", h.Team.DeleteTeam)
			})

			// Flat so the public verify-password route above does not collide with a mount.
			pr.Get("/photo-jobs", h.PhotoJob.ListJobs)
			pr.Post("/photo-jobs", h.PhotoJob.CreateJob)
			pr.Get("/photo-jobs/{id}", h.PhotoJob.GetJob)
			pr.Patch("/photo-jobs/{id}", h.PhotoJob.UpdateJob)
			pr.Delete("/photo-jobs/{id}", h.PhotoJob.DeleteJob)
			pr.Get("/photo-jobs/{id}/comments", h.Access.ListOwnerComments)
			pr.Post("/photo-jobs/{id}/comments", h.Access.PostOwnerComment)

			pr.Patch("/comments/{id}", h.Access.UpdateComment)
		})
	})
}
