package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/directory-api/internal/config"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/platform/postgres"
	"github.com/phrazzld/directory-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	postStore store.PostStore
}

// newApplication loads configuration, sets up logging, connects to the
// database, applies migrations and constructs the stores.
// Returns a fully wired application or an error if any step fails;
// a connection failure at startup is fatal by design.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(context.Background(), db, appLogger); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Failed to close database after migration failure", "error", closeErr)
		}
		return nil, err
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		db:        db,
		userStore: postgres.NewPostgresUserStore(db, appLogger),
		postStore: postgres.NewPostgresPostStore(db, appLogger),
	}, nil
}

// cleanup releases the application's long-lived resources.
// Safe to call once during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
			return
		}
		app.logger.Info("Database connection closed")
	}
}
