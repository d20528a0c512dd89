package table

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tabula/internal/chart"
	"github.com/thenoetrevino/tabula/internal/database"
	"github.com/thenoetrevino/tabula/internal/models"
	"github.com/thenoetrevino/tabula/internal/transfer"
)

// Service defines every table operation exposed to the shells.
// Each call is independent; nothing spans calls.
type Service interface {
	// Read operations
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, name string) (*models.Table, error)
	RunQuery(ctx context.Context, query string, args ...any) (*models.ResultSet, error)
	Visualize(ctx context.Context, query string) (*chart.Chart, error)

	// Write operations
	CreateTable(ctx context.Context, req CreateTableRequest) error
	InsertRows(ctx context.Context, req InsertRowsRequest) (int, error)
	UpdateRows(ctx context.Context, req UpdateRowsRequest) (int64, error)
	DeleteRows(ctx context.Context, req DeleteRowsRequest) (int64, error)

	// File transfer
	Export(ctx context.Context, req TransferRequest) (int, error)
	Import(ctx context.Context, req TransferRequest) (int, error)
}

// CreateTableRequest encapsulates data for creating a table.
// Definition ("id INTEGER, name TEXT") is parsed when Columns is empty.
type CreateTableRequest struct {
	Name       string
	Columns    []models.ColumnDef
	Definition string
}

// InsertRowsRequest encapsulates a bulk insert
type InsertRowsRequest struct {
	Table string
	Rows  []models.Row
}

// UpdateRowsRequest encapsulates a single UPDATE.
// Where may reference WhereArgs through ? placeholders.
type UpdateRowsRequest struct {
	Table     string
	Set       []models.Assignment
	Where     string
	WhereArgs []any
}

// DeleteRowsRequest encapsulates a single DELETE
type DeleteRowsRequest struct {
	Table     string
	Where     string
	WhereArgs []any
}

// TransferRequest names a table, a file and its format.
// An empty Format is inferred from the file extension.
type TransferRequest struct {
	Table  string
	Path   string
	Format models.Format
}

// repository defines the data access methods needed by the table service
// This interface is private to the service layer
type repository interface {
	CreateTable(ctx context.Context, name string, defs []models.ColumnDef) error
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, name string) (*models.Table, error)
	InsertRows(ctx context.Context, table string, rows []models.Row) error
	InsertNamedRows(ctx context.Context, table string, columns []string, rows []models.Row) error
	UpdateRows(ctx context.Context, table string, set []models.Assignment, where string, whereArgs ...any) (int64, error)
	DeleteRows(ctx context.Context, table string, where string, whereArgs ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (*models.ResultSet, error)
	ReadTable(ctx context.Context, name string) (*models.ResultSet, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new table service. A nil logger uses slog.Default().
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// ListTables returns all user tables
func (s *service) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, s.fail("list tables", err)
	}
	return tables, nil
}

// DescribeTable returns a table's columns and row count
func (s *service) DescribeTable(ctx context.Context, name string) (*models.Table, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTableName
	}
	table, err := s.repo.DescribeTable(ctx, name)
	if err != nil {
		return nil, s.fail("describe table", err, "table", name)
	}
	return table, nil
}

// RunQuery executes caller-supplied SQL verbatim and returns every row
func (s *service) RunQuery(ctx context.Context, query string, args ...any) (*models.ResultSet, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	rs, err := s.repo.Query(ctx, query, args...)
	if err != nil {
		return nil, s.fail("run query", err, "query", query)
	}
	s.logger.Info("query executed", "rows", rs.Len(), "columns", len(rs.Columns))
	return rs, nil
}

// Visualize runs the query and builds a bar chart of its result
func (s *service) Visualize(ctx context.Context, query string) (*chart.Chart, error) {
	rs, err := s.RunQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	c, err := chart.FromResultSet(query, rs)
	if err != nil {
		return nil, s.fail("visualize", err, "query", query)
	}
	return c, nil
}

// CreateTable creates the table if it does not exist
func (s *service) CreateTable(ctx context.Context, req CreateTableRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyTableName
	}

	defs := req.Columns
	if len(defs) == 0 {
		parsed, err := database.ParseColumnDefs(req.Definition)
		if err != nil {
			return s.fail("create table", err, "table", req.Name)
		}
		defs = parsed
	}

	if err := s.repo.CreateTable(ctx, req.Name, defs); err != nil {
		return s.fail("create table", err, "table", req.Name)
	}
	s.logger.Info("table created", "table", req.Name, "columns", len(defs))
	return nil
}

// InsertRows inserts every row or none
func (s *service) InsertRows(ctx context.Context, req InsertRowsRequest) (int, error) {
	if strings.TrimSpace(req.Table) == "" {
		return 0, ErrEmptyTableName
	}
	if err := s.repo.InsertRows(ctx, req.Table, req.Rows); err != nil {
		return 0, s.fail("insert rows", err, "table", req.Table, "rows", len(req.Rows))
	}
	s.logger.Info("rows inserted", "table", req.Table, "rows", len(req.Rows))
	return len(req.Rows), nil
}

// UpdateRows runs one UPDATE and reports the affected row count
func (s *service) UpdateRows(ctx context.Context, req UpdateRowsRequest) (int64, error) {
	if strings.TrimSpace(req.Table) == "" {
		return 0, ErrEmptyTableName
	}
	n, err := s.repo.UpdateRows(ctx, req.Table, req.Set, req.Where, req.WhereArgs...)
	if err != nil {
		return 0, s.fail("update rows", err, "table", req.Table, "where", req.Where)
	}
	s.logger.Info("rows updated", "table", req.Table, "rows", n)
	return n, nil
}

// DeleteRows runs one DELETE and reports the affected row count
func (s *service) DeleteRows(ctx context.Context, req DeleteRowsRequest) (int64, error) {
	if strings.TrimSpace(req.Table) == "" {
		return 0, ErrEmptyTableName
	}
	n, err := s.repo.DeleteRows(ctx, req.Table, req.Where, req.WhereArgs...)
	if err != nil {
		return 0, s.fail("delete rows", err, "table", req.Table, "where", req.Where)
	}
	s.logger.Info("rows deleted", "table", req.Table, "rows", n)
	return n, nil
}

// Export writes the whole table to a file and returns the number of rows written
func (s *service) Export(ctx context.Context, req TransferRequest) (int, error) {
	format, err := s.validateTransfer(req)
	if err != nil {
		return 0, err
	}

	rs, err := s.repo.ReadTable(ctx, req.Table)
	if err != nil {
		return 0, s.fail("export", err, "table", req.Table, "path", req.Path)
	}
	if err := transfer.WriteFile(req.Path, format, rs); err != nil {
		return 0, s.fail("export", err, "table", req.Table, "path", req.Path)
	}

	s.logger.Info("table exported", "table", req.Table, "path", req.Path, "format", format, "rows", rs.Len())
	return rs.Len(), nil
}

// Import appends every row of a file to an existing table, all or nothing.
// CSV and XLSX rows are matched to table columns by header name; XML rows are
// inserted positionally.
func (s *service) Import(ctx context.Context, req TransferRequest) (int, error) {
	format, err := s.validateTransfer(req)
	if err != nil {
		return 0, err
	}

	table, err := s.repo.DescribeTable(ctx, req.Table)
	if err != nil {
		return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
	}

	rs, err := transfer.ReadFile(req.Path, format)
	if err != nil {
		return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
	}
	if rs.Len() == 0 {
		s.logger.Info("nothing to import", "table", req.Table, "path", req.Path)
		return 0, nil
	}

	if format == models.FormatXML {
		if len(rs.Columns) != len(table.Columns) {
			err := fmt.Errorf("%w: file rows have %d values, table %s has %d columns",
				ErrArityMismatch, len(rs.Columns), req.Table, len(table.Columns))
			return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
		}
		if err := s.repo.InsertRows(ctx, req.Table, rs.Rows); err != nil {
			return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
		}
	} else {
		columns, err := matchColumns(rs.Columns, table)
		if err != nil {
			return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
		}
		if err := s.repo.InsertNamedRows(ctx, req.Table, columns, rs.Rows); err != nil {
			return 0, s.fail("import", err, "table", req.Table, "path", req.Path)
		}
	}

	s.logger.Info("table imported", "table", req.Table, "path", req.Path, "format", format, "rows", rs.Len())
	return rs.Len(), nil
}

// validateTransfer checks the request and resolves its format
func (s *service) validateTransfer(req TransferRequest) (models.Format, error) {
	if strings.TrimSpace(req.Table) == "" {
		return "", ErrEmptyTableName
	}
	if strings.TrimSpace(req.Path) == "" {
		return "", ErrEmptyPath
	}
	if req.Format != "" {
		return models.ParseFormat(string(req.Format))
	}
	return models.FormatFromPath(req.Path)
}

// matchColumns maps file header names onto the table's declared names
func matchColumns(header []string, table *models.Table) ([]string, error) {
	byName := make(map[string]string, len(table.Columns))
	for _, c := range table.Columns {
		byName[strings.ToLower(c.Name)] = c.Name
	}

	columns := make([]string, len(header))
	for i, h := range header {
		name, ok := byName[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a column of %s", ErrIncompatibleColumns, h, table.Name)
		}
		columns[i] = name
	}
	return columns, nil
}

// fail logs a failed operation and returns the error unchanged
func (s *service) fail(op string, err error, attrs ...any) error {
	s.logger.Error("failed to "+op, append(attrs, "error", err)...)
	return err
}
