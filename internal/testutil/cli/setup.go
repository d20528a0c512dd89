package cli

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/tabula/internal/app"
	"github.com/thenoetrevino/tabula/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db, appInstance
}

// CreateProductsTable wraps testutil.CreateProductsTable for CLI tests
func CreateProductsTable(t *testing.T, db *sql.DB) {
	t.Helper()
	testutil.CreateProductsTable(t, db)
}
