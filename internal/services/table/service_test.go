package table

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tabula/internal/database"
	"github.com/thenoetrevino/tabula/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) Service {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(database.NewTableRepo(db), logger)
}

const productsDefinition = "id INTEGER, name TEXT, price REAL, qty INTEGER"

func createProducts(t *testing.T, svc Service, name string) {
	t.Helper()
	err := svc.CreateTable(context.Background(), CreateTableRequest{Name: name, Definition: productsDefinition})
	require.NoError(t, err)
}

func seedProducts(t *testing.T, svc Service, name string) {
	t.Helper()
	createProducts(t, svc, name)
	_, err := svc.InsertRows(context.Background(), InsertRowsRequest{
		Table: name,
		Rows: []models.Row{
			{int64(1), "Product X", 100.0, int64(10)},
			{int64(2), "Product Y", 2.5, int64(3)},
			{int64(3), "Quote \"Q\", Ltd", 0.25, nil},
		},
	})
	require.NoError(t, err)
}

func sortedStrings(rs *models.ResultSet) [][]string {
	rows := rs.Strings()
	sort.Slice(rows, func(i, j int) bool { return strings.Join(rows[i], "\x00") < strings.Join(rows[j], "\x00") })
	return rows
}

// ============================================================================
// CREATE / INSERT / QUERY
// ============================================================================

func TestCreateTable_TwiceYieldsOneTable(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	createProducts(t, svc, "products")
	createProducts(t, svc, "products")

	tables, err := svc.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"products"}, tables)
}

func TestCreateTable_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateTable(ctx, CreateTableRequest{Definition: "id INTEGER"}), ErrEmptyTableName)
	assert.ErrorIs(t, svc.CreateTable(ctx, CreateTableRequest{Name: "t"}), ErrNoColumns)
	assert.ErrorIs(t, svc.CreateTable(ctx, CreateTableRequest{Name: "t x", Definition: "id INTEGER"}), ErrInvalidIdentifier)

	err := svc.CreateTable(ctx, CreateTableRequest{
		Name:    "typed",
		Columns: []models.ColumnDef{{Name: "id", Type: "INTEGER PRIMARY KEY"}},
	})
	assert.NoError(t, err)
}

func TestProductsScenario(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	createProducts(t, svc, "products")

	n, err := svc.InsertRows(ctx, InsertRowsRequest{
		Table: "products",
		Rows:  []models.Row{{int64(1), "Product X", int64(100), int64(10)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rs, err := svc.RunQuery(ctx, "SELECT * FROM products")
	require.NoError(t, err)
	assert.Equal(t, []models.Row{{int64(1), "Product X", 100.0, int64(10)}}, rs.Rows)

	path := filepath.Join(t.TempDir(), "products.csv")
	written, err := svc.Export(ctx, TransferRequest{Table: "products", Path: path})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "1,Product X,100,10", lines[1])
}

func TestInsertRows_CountAndAtomicity(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")

	count := func() int64 {
		table, err := svc.DescribeTable(ctx, "products")
		require.NoError(t, err)
		return table.RowCount
	}
	assert.Equal(t, int64(3), count())

	_, err := svc.InsertRows(ctx, InsertRowsRequest{Table: "products", Rows: []models.Row{
		{int64(4), "A", 1.0, int64(1)},
		{int64(5), "B", 1.0, int64(1)},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count())

	_, err = svc.InsertRows(ctx, InsertRowsRequest{Table: "products", Rows: []models.Row{{int64(6), "short"}}})
	assert.Error(t, err)
	assert.Equal(t, int64(5), count())

	_, err = svc.InsertRows(ctx, InsertRowsRequest{Table: "products"})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestRunQuery(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")

	rs, err := svc.RunQuery(ctx, "SELECT * FROM products WHERE 1=0")
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())

	_, err = svc.RunQuery(ctx, "SELECT * FROM missing")
	assert.Error(t, err)

	_, err = svc.RunQuery(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateAndDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")

	n, err := svc.UpdateRows(ctx, UpdateRowsRequest{
		Table:     "products",
		Set:       []models.Assignment{{Column: "price", Value: 9.99}},
		Where:     "id = ?",
		WhereArgs: []any{2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rs, err := svc.RunQuery(ctx, "SELECT price FROM products WHERE id = 2")
	require.NoError(t, err)
	assert.Equal(t, 9.99, rs.Rows[0][0])

	_, err = svc.UpdateRows(ctx, UpdateRowsRequest{Table: "products", Set: []models.Assignment{{Column: "price", Value: 0}}})
	assert.ErrorIs(t, err, ErrUnsafeClause)

	n, err = svc.DeleteRows(ctx, DeleteRowsRequest{Table: "products", Where: "qty IS NULL"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.DeleteRows(ctx, DeleteRowsRequest{Table: "", Where: "1=1"})
	assert.ErrorIs(t, err, ErrEmptyTableName)
}

// ============================================================================
// IMPORT / EXPORT
// ============================================================================

func TestRoundTrip_CSV(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")
	createProducts(t, svc, "copy")

	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := svc.Export(ctx, TransferRequest{Table: "products", Path: path, Format: models.FormatCSV})
	require.NoError(t, err)

	n, err := svc.Import(ctx, TransferRequest{Table: "copy", Path: path, Format: models.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := svc.RunQuery(ctx, "SELECT * FROM products")
	require.NoError(t, err)
	got, err := svc.RunQuery(ctx, "SELECT * FROM copy")
	require.NoError(t, err)
	assert.Equal(t, want.Rows, got.Rows)
}

func TestRoundTrip_CSVEmptyTextBecomesNull(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	for _, name := range []string{"notes", "notes_copy"} {
		require.NoError(t, svc.CreateTable(ctx, CreateTableRequest{Name: name, Definition: "id INTEGER, body TEXT"}))
	}
	_, err := svc.InsertRows(ctx, InsertRowsRequest{Table: "notes", Rows: []models.Row{{int64(1), ""}}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "notes.csv")
	_, err = svc.Export(ctx, TransferRequest{Table: "notes", Path: path})
	require.NoError(t, err)
	_, err = svc.Import(ctx, TransferRequest{Table: "notes_copy", Path: path})
	require.NoError(t, err)

	got, err := svc.RunQuery(ctx, "SELECT quote(body) FROM notes_copy")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "NULL", got.Rows[0][0])
}

func TestRoundTrip_XMLAsStrings(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")
	createProducts(t, svc, "copy")

	path := filepath.Join(t.TempDir(), "out.xml")
	_, err := svc.Export(ctx, TransferRequest{Table: "products", Path: path})
	require.NoError(t, err)

	n, err := svc.Import(ctx, TransferRequest{Table: "copy", Path: path})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := svc.RunQuery(ctx, "SELECT * FROM products")
	require.NoError(t, err)
	got, err := svc.RunQuery(ctx, "SELECT * FROM copy")
	require.NoError(t, err)
	assert.Equal(t, sortedStrings(want), sortedStrings(got))
}

func TestRoundTrip_XLSX(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")
	createProducts(t, svc, "copy")

	path := filepath.Join(t.TempDir(), "out.xlsx")
	_, err := svc.Export(ctx, TransferRequest{Table: "products", Path: path})
	require.NoError(t, err)

	_, err = svc.Import(ctx, TransferRequest{Table: "copy", Path: path})
	require.NoError(t, err)

	want, err := svc.RunQuery(ctx, "SELECT * FROM products")
	require.NoError(t, err)
	got, err := svc.RunQuery(ctx, "SELECT * FROM copy")
	require.NoError(t, err)
	assert.Equal(t, sortedStrings(want), sortedStrings(got))
}

func TestRoundTrip_DatetimeKeepsStoredText(t *testing.T) {
	for _, format := range models.Formats {
		t.Run(string(format), func(t *testing.T) {
			svc := setupService(t)
			ctx := context.Background()
			for _, name := range []string{"ev", "ev_copy"} {
				require.NoError(t, svc.CreateTable(ctx, CreateTableRequest{Name: name, Definition: "id INTEGER, at DATETIME, name TEXT"}))
			}
			_, err := svc.InsertRows(ctx, InsertRowsRequest{
				Table: "ev",
				Rows:  []models.Row{{int64(1), "2024-03-01 10:00:00", "x"}},
			})
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "ev."+string(format))
			_, err = svc.Export(ctx, TransferRequest{Table: "ev", Path: path, Format: format})
			require.NoError(t, err)
			_, err = svc.Import(ctx, TransferRequest{Table: "ev_copy", Path: path, Format: format})
			require.NoError(t, err)

			got, err := svc.RunQuery(ctx, "SELECT quote(at) FROM ev_copy")
			require.NoError(t, err)
			require.Len(t, got.Rows, 1)
			assert.Equal(t, "'2024-03-01 10:00:00'", got.Rows[0][0])
		})
	}
}

func TestImport_Failures(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	createProducts(t, svc, "products")
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,colour\n1,red\n"), 0o644))

	_, err := svc.Import(ctx, TransferRequest{Table: "products", Path: csvPath})
	assert.ErrorIs(t, err, ErrIncompatibleColumns)

	_, err = svc.Import(ctx, TransferRequest{Table: "ghost", Path: csvPath})
	assert.ErrorIs(t, err, ErrTableNotFound)

	xmlPath := filepath.Join(dir, "in.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte("<data><item><id>1</id></item></data>"), 0o644))
	_, err = svc.Import(ctx, TransferRequest{Table: "products", Path: xmlPath})
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = svc.Import(ctx, TransferRequest{Table: "products", Path: filepath.Join(dir, "in.json")})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = svc.Import(ctx, TransferRequest{Table: "products"})
	assert.ErrorIs(t, err, ErrEmptyPath)

	table, err := svc.DescribeTable(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, int64(0), table.RowCount)
}

func TestImport_HeaderOnly(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	createProducts(t, svc, "products")

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name,price,qty\n"), 0o644))

	n, err := svc.Import(ctx, TransferRequest{Table: "products", Path: path})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestExport_MissingTable(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Export(context.Background(), TransferRequest{
		Table: "ghost",
		Path:  filepath.Join(t.TempDir(), "ghost.csv"),
	})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// ============================================================================
// VISUALIZE
// ============================================================================

func TestVisualize(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	seedProducts(t, svc, "products")

	c, err := svc.Visualize(ctx, "SELECT name, price, qty FROM products ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, []string{"Product X", "Product Y", "Quote \"Q\", Ltd"}, c.Categories)
	require.Len(t, c.Series, 2)
	assert.Equal(t, []float64{100, 2.5, 0.25}, c.Series[0].Values)

	_, err = svc.Visualize(ctx, "SELECT name, name FROM products")
	assert.ErrorIs(t, err, ErrNoNumericColumns)

	_, err = svc.Visualize(ctx, "SELECT * FROM ghost")
	assert.Error(t, err)
}
