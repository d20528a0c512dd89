package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tabula/internal/database"
	"github.com/thenoetrevino/tabula/internal/models"
)

// SetupTestDB creates an in-memory database and closes it when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestTable creates a table from a column definition fragment such as
// "id INTEGER, name TEXT"
func CreateTestTable(t *testing.T, db *sql.DB, name, definition string) {
	t.Helper()

	defs, err := database.ParseColumnDefs(definition)
	if err != nil {
		t.Fatalf("Failed to parse column definitions: %v", err)
	}
	if err := database.NewTableRepo(db).CreateTable(context.Background(), name, defs); err != nil {
		t.Fatalf("Failed to create test table %s: %v", name, err)
	}
}

// InsertTestRows inserts rows positionally
func InsertTestRows(t *testing.T, db *sql.DB, table string, rows ...models.Row) {
	t.Helper()
	if err := database.NewTableRepo(db).InsertRows(context.Background(), table, rows); err != nil {
		t.Fatalf("Failed to insert test rows into %s: %v", table, err)
	}
}

// CreateProductsTable creates the products table used across tests:
// id INTEGER, name VARCHAR(20), price INTEGER, qty INTEGER
func CreateProductsTable(t *testing.T, db *sql.DB) {
	t.Helper()
	CreateTestTable(t, db, "products", "id INTEGER, name VARCHAR(20), price INTEGER, qty INTEGER")
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int64 {
	t.Helper()
	n, err := database.NewTableRepo(db).CountRows(context.Background(), table)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
