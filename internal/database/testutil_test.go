package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tabula/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database pinned to a single connection
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createProductsTable creates the products(id, name, price, qty) table used across tests
func createProductsTable(t *testing.T, repo *TableRepo) {
	t.Helper()
	err := repo.CreateTable(context.Background(), "products", []models.ColumnDef{
		{Name: "id", Type: "INTEGER"},
		{Name: "name", Type: "TEXT"},
		{Name: "price", Type: "REAL"},
		{Name: "qty", Type: "INTEGER"},
	})
	if err != nil {
		t.Fatalf("Failed to create products table: %v", err)
	}
}
