package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/tabula/internal/database"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// App holds all application services and provides dependency injection.
// It replaces process-wide state: both shells receive one App and reach
// the database only through it.
type App struct {
	db     *sql.DB
	repo   database.DataStore
	logger *slog.Logger

	// Service layer (business logic)
	TableService tableservice.Service
}

// New creates a new App with all services initialized.
// The App owns db from here on; Close releases it.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		db:           db,
		repo:         repo,
		logger:       cfg.logger,
		TableService: tableservice.NewService(repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection. Safe to call more than once.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	db := a.db
	a.db = nil
	if err := db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
		return err
	}
	a.logger.Info("database closed")
	return nil
}
