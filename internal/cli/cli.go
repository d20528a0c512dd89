package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tabula/internal/app"
	"github.com/thenoetrevino/tabula/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was handed in through the context
	owned bool
}

type contextKey string

const (
	dbPathKey contextKey = "dbPath"
	appKey    contextKey = "app"
)

// WithApp hands a ready App to the command about to run. The CLI does not
// close an App received this way.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithDatabasePath stores the resolved database path for the command about to run
func WithDatabasePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dbPathKey, path)
}

// DatabasePathFromContext returns the path stored by WithDatabasePath
func DatabasePathFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(dbPathKey).(string)
	return path
}

// NewCLI opens the database at path and builds the application container
func NewCLI(ctx context.Context, path string) (*CLI, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   app.New(db, app.WithLogger(slog.Default())),
		owned: true,
	}, nil
}

// GetCLIFromContext returns the CLI for a command. An App stored by WithApp
// is used as is; otherwise the database path stored in ctx is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if testApp, ok := ctx.Value(appKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp}, nil
	}

	path := DatabasePathFromContext(ctx)
	if path == "" {
		return nil, fmt.Errorf("no database path configured (use --db or TABULA_DB)")
	}
	return NewCLI(ctx, path)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
