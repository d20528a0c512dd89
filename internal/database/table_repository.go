package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tabula/internal/models"
)

// TableRepo executes table and row statements against one SQLite handle
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo wraps the given database handle
func NewTableRepo(db *sql.DB) *TableRepo {
	return &TableRepo{db: db}
}

// CreateTable creates the table if it does not exist yet.
// Re-creating an existing table is a no-op; its columns are left untouched.
func (r *TableRepo) CreateTable(ctx context.Context, name string, defs []models.ColumnDef) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	if err := ValidateColumnDefs(defs); err != nil {
		return err
	}

	cols := make([]string, len(defs))
	for i, d := range defs {
		cols[i] = QuoteIdent(d.Name) + " " + strings.TrimSpace(d.Type)
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", QuoteIdent(name), strings.Join(cols, ", "))

	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return nil
}

// ListTables returns user table names in alphabetical order
func (r *TableRepo) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TableExists reports whether a table with this name exists
func (r *TableRepo) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return count > 0, nil
}

// DescribeTable returns the declared columns of a table and its row count
func (r *TableRepo) DescribeTable(ctx context.Context, name string) (*models.Table, error) {
	if err := r.requireTable(ctx, name); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", QuoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	table := &models.Table{Name: name}
	for rows.Next() {
		var (
			col     models.Column
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&col.Position, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		if dflt.Valid {
			v := dflt.String
			col.Default = &v
		}
		table.Columns = append(table.Columns, &col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	count, err := r.CountRows(ctx, name)
	if err != nil {
		return nil, err
	}
	table.RowCount = count
	return table, nil
}

// CountRows returns the number of rows in a table
func (r *TableRepo) CountRows(ctx context.Context, name string) (int64, error) {
	if err := ValidateIdentifier(name); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", QuoteIdent(name))).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", name, err)
	}
	return count, nil
}

// InsertRows inserts rows positionally. All rows commit together or none do.
func (r *TableRepo) InsertRows(ctx context.Context, table string, rows []models.Row) error {
	return r.insert(ctx, table, nil, rows)
}

// InsertNamedRows inserts rows into the listed columns. All rows commit together or none do.
func (r *TableRepo) InsertNamedRows(ctx context.Context, table string, columns []string, rows []models.Row) error {
	if len(columns) == 0 {
		return models.ErrNoColumns
	}
	for _, c := range columns {
		if err := ValidateIdentifier(c); err != nil {
			return err
		}
	}
	return r.insert(ctx, table, columns, rows)
}

func (r *TableRepo) insert(ctx context.Context, table string, columns []string, rows []models.Row) error {
	if err := ValidateIdentifier(table); err != nil {
		return err
	}
	if len(rows) == 0 {
		return models.ErrNoRows
	}

	width := len(rows[0])
	if width == 0 {
		return fmt.Errorf("%w: row 1 is empty", models.ErrArityMismatch)
	}
	if columns != nil && width != len(columns) {
		return fmt.Errorf("%w: %d columns named, row 1 has %d values", models.ErrArityMismatch, len(columns), width)
	}
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d values, expected %d", models.ErrArityMismatch, i+1, len(row), width)
		}
	}

	target := QuoteIdent(table)
	if columns != nil {
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = QuoteIdent(c)
		}
		target += " (" + strings.Join(quoted, ", ") + ")"
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", width), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s VALUES (%s)", target, placeholders)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		prepared, err := tx.PrepareContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to prepare insert into %s: %w", table, err)
		}
		defer func() { _ = prepared.Close() }()

		args := make([]any, width)
		for i, row := range rows {
			for j, v := range row {
				args[j] = bindValue(v)
			}
			if _, err := prepared.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert row %d into %s: %w", i+1, table, err)
			}
		}
		return nil
	})
}

// UpdateRows runs a single UPDATE. SET values and where arguments are bound.
func (r *TableRepo) UpdateRows(ctx context.Context, table string, set []models.Assignment, where string, whereArgs ...any) (int64, error) {
	if err := ValidateIdentifier(table); err != nil {
		return 0, err
	}
	if len(set) == 0 {
		return 0, fmt.Errorf("%w: nothing to set", models.ErrUnsafeClause)
	}
	if err := ValidateClause(where); err != nil {
		return 0, err
	}

	assignments := make([]string, len(set))
	args := make([]any, 0, len(set)+len(whereArgs))
	for i, a := range set {
		if err := ValidateIdentifier(a.Column); err != nil {
			return 0, err
		}
		assignments[i] = QuoteIdent(a.Column) + " = ?"
		args = append(args, bindValue(a.Value))
	}
	args = append(args, whereArgs...)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s", QuoteIdent(table), strings.Join(assignments, ", "), where)
	result, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, err)
	}
	return result.RowsAffected()
}

// DeleteRows runs a single DELETE with a bound where clause
func (r *TableRepo) DeleteRows(ctx context.Context, table string, where string, whereArgs ...any) (int64, error) {
	if err := ValidateIdentifier(table); err != nil {
		return 0, err
	}
	if err := ValidateClause(where); err != nil {
		return 0, err
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s", QuoteIdent(table), where)
	result, err := r.db.ExecContext(ctx, stmt, whereArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return result.RowsAffected()
}

// Query runs arbitrary SQL and materialises every result row.
// Statements that return no columns yield an empty result set.
func (r *TableRepo) Query(ctx context.Context, query string, args ...any) (*models.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanResultSet(rows)
}

// ReadTable returns every row of a table
func (r *TableRepo) ReadTable(ctx context.Context, name string) (*models.ResultSet, error) {
	if err := r.requireTable(ctx, name); err != nil {
		return nil, err
	}
	return r.Query(ctx, fmt.Sprintf("SELECT * FROM %s", QuoteIdent(name)))
}

func (r *TableRepo) requireTable(ctx context.Context, name string) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	exists, err := r.TableExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", models.ErrTableNotFound, name)
	}
	return nil
}
