package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/matteocalo/photodesk/api"
	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/access"
	"github.com/matteocalo/photodesk/internal/auth"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/core/events"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/storage"
	"github.com/matteocalo/photodesk/internal/team"
	"github.com/matteocalo/photodesk/internal/transport"
	"github.com/matteocalo/photodesk/internal/transport/rest"
	"github.com/matteocalo/photodesk/internal/transport/swagger"
	"github.com/matteocalo/photodesk/internal/user"
	"github.com/matteocalo/photodesk/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

const shutdownTimeout = 30 * time.Second

type Dependencies struct {
	Config *internal.Config
	Store  storage.Manager
	Bus    *events.EventBus
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Configure(cfg.Logging.Format, cfg.Logging.Level)

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}

	deps, err := NewDependencies(cfg, store, logger.L())
	if err != nil {
		_ = store.Close()
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "driver", cfg.Database.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			deps.Close()
			os.Exit(1)
		}
	}

	deps.Close()
	deps.Logger.Info("Server stopped")
}

// NewDependencies wires services and handlers over an opened store.
func NewDependencies(cfg *internal.Config, store storage.Manager, lg *slog.Logger) (*Dependencies, error) {
	if _, err := swagger.Load(context.Background(), api.OpenAPI); err != nil {
		return nil, err
	}

	hasher := password.NewHasher(cfg.Security.BCryptCost)

	bus := events.NewEventBus(lg)
	events.NewActivityLogger(lg).RegisterEventHandlers(bus)

	users := store.Users()
	clientRepo := store.Clients()
	jobRepo := store.PhotoJobs()

	userService := user.NewService(users, hasher, lg)
	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.AccessTokenDuration, auth.DefaultRefreshTokenTTL)
	authService := auth.NewService(users, tokenGen, hasher, lg)
	clientService := client.NewService(clientRepo, lg)
	equipmentService := equipment.NewService(store.Equipment(), lg)
	eventService := event.NewService(store.Events(), clientRepo, lg)
	teamService := team.NewService(store.Teams(), lg)
	commentService := comment.NewService(store.Comments(), lg)
	jobService := photojob.NewService(jobRepo, clientRepo, commentService, hasher, bus, lg)
	accessService := access.NewService(jobRepo, clientRepo, commentService, hasher, bus, lg)

	base := transport.NewBaseHandler(lg)
	component := cfg.Database.Driver
	if component == "" {
		component = internal.DriverMemory
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, rest.Handlers{
		Health:    rest.NewHealthHandler(store, component),
		Auth:      auth.NewHandler(base, authService),
		User:      user.NewHandler(base, userService),
		Client:    client.NewHandler(base, clientService),
		Equipment: equipment.NewHandler(base, equipmentService),
		Event:     event.NewHandler(base, eventService),
		Team:      team.NewHandler(base, teamService),
		PhotoJob:  photojob.NewHandler(base, jobService),
		Access:    access.NewHandler(base, accessService),
	}, api.OpenAPI, lg)

	return &Dependencies{
		Config: cfg,
		Store:  store,
		Bus:    bus,
		Router: router,
		Logger: lg,
	}, nil
}

// Close drains pending event handlers and releases the store.
func (d *Dependencies) Close() {
	d.Bus.Wait()
	if err := d.Store.Close(); err != nil {
		d.Logger.Error("Storage close error", "error", err)
	}
}
