package database

import (
	"context"

	"github.com/thenoetrevino/tabula/internal/models"
)

// TableRepository defines the data access operations on user tables
type TableRepository interface {
	// Schema
	CreateTable(ctx context.Context, name string, defs []models.ColumnDef) error
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, name string) (*models.Table, error)
	TableExists(ctx context.Context, name string) (bool, error)
	CountRows(ctx context.Context, name string) (int64, error)

	// Rows
	InsertRows(ctx context.Context, table string, rows []models.Row) error
	InsertNamedRows(ctx context.Context, table string, columns []string, rows []models.Row) error
	UpdateRows(ctx context.Context, table string, set []models.Assignment, where string, whereArgs ...any) (int64, error)
	DeleteRows(ctx context.Context, table string, where string, whereArgs ...any) (int64, error)

	// Reads
	Query(ctx context.Context, query string, args ...any) (*models.ResultSet, error)
	ReadTable(ctx context.Context, name string) (*models.ResultSet, error)
}
