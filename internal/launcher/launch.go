// Package launcher wires the database, the App and the terminal UI together
// for the interactive entry point.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tabula/internal/app"
	"github.com/thenoetrevino/tabula/internal/config"
	"github.com/thenoetrevino/tabula/internal/database"
	"github.com/thenoetrevino/tabula/internal/tui"
)

// Launch opens the database at dbPath and runs the TUI until the user quits
// or the process is interrupted.
func Launch(ctx context.Context, cfg *config.Config, dbPath string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(slog.Default()))
	slog.Info("starting tui", "database", dbPath)

	// Run closes the App, and with it the database, on exit
	if err := tui.Run(ctx, application, cfg); err != nil {
		return err
	}

	if ctx.Err() != nil {
		slog.Info("shutdown signal received")
	}
	return nil
}
