package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	httpapi "github.com/lodgeline/lodgeline/internal/invites/http"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/internal/invites/store/drivers/memory"
	"github.com/lodgeline/lodgeline/internal/invites/store/drivers/sqlite"
	"github.com/lodgeline/lodgeline/pkg/jwtx"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the invite service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store // nil when the backend chain is remote-only
	backend  backend.CodeStore
	verifier *jwtx.Verifier

	// Services
	propertyService     *service.PropertyService
	housekeepingService *service.HousekeepingService // nil without a local store

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "invites-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("INVITES_JWT_SECRET is required")
	}
	app.verifier = &jwtx.Verifier{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	}

	if cfg.UsesLocal() {
		if err := app.initDatabase(); err != nil {
			return nil, err
		}
	}

	if err := app.initBackend(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("invite service starting",
		"port", app.cfg.Port,
		"backend", app.cfg.Backend,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down invite service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			return err
		}
	}

	app.logger.Info("invite service stopped")
	return nil
}

// initDatabase initializes the local store and applies migrations.
func (app *Application) initDatabase() error {
	switch app.cfg.StoreDriver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	case "memory":
		app.db = memory.NewStore()
	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database ready", "driver", app.cfg.StoreDriver)
	return nil
}

// initBackend builds the configured backend strategy chain.
func (app *Application) initBackend() error {
	b, err := backend.New(app.cfg.Backend, backend.Options{
		Store:     app.db,
		RemoteURL: app.cfg.RemoteURL,
	})
	if err != nil {
		return fmt.Errorf("failed to build backend %q: %w", app.cfg.Backend, err)
	}
	app.backend = b
	return nil
}

// initServices initializes the locally served business services.
func (app *Application) initServices() {
	if app.db == nil {
		return
	}

	app.propertyService = &service.PropertyService{Store: app.db}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.cfg.PublicBaseURL,
		app.backend,
		app.propertyService,
		app.logger,
	)
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: router,
	}
}
