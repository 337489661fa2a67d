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
	"time"

	httpapi "github.com/aussiebroadwan/pairing/internal/pairing/http"
	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/postgres"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/sqlite"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the pairing service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *AuthKeys

	pairingService      *service.PairingService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "pairing-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application with all dependencies initialized.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	db, err := OpenStore(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	keys, err := InitAuthKeys(ctx, cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize token verification: %w", err)
	}
	app.keys = keys

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// OpenStore connects to the configured driver and applies migrations.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.StoreDriver {
	case "postgres":
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.StoreDriver, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", "driver", cfg.StoreDriver)
	return db, nil
}

// NewPairingService builds the pairing service for db from cfg.
func NewPairingService(cfg Config, db store.Store) *service.PairingService {
	return &service.PairingService{
		Store:      db,
		CodeTTL:    cfg.CodeTTL,
		SessionTTL: cfg.SessionTTL,
		Cache:      service.NewClaimCache(cfg.ClaimCacheSize, cfg.CodeTTL),
	}
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("pairing service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
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

// Shutdown drains HTTP requests, stops background jobs and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pairing service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("pairing service stopped")
	return nil
}

func (app *Application) initServices() error {
	app.pairingService = NewPairingService(app.cfg, app.db)

	hk, err := service.NewHousekeepingService(app.pairingService, app.logger, app.cfg.HousekeepingInterval)
	if err != nil {
		return fmt.Errorf("failed to initialize housekeeping: %w", err)
	}

	if remote := app.keys.Remote; remote != nil {
		err := hk.AddJob("refresh_jwks", service.Every(app.cfg.JWKSRefresh), func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return remote.Refresh(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule jwks refresh: %w", err)
		}
	}

	app.housekeepingService = hk
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.Source,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)
	router.PairingService = app.pairingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
