package tui

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tabula/internal/config"
	"github.com/thenoetrevino/tabula/internal/models"
	"github.com/thenoetrevino/tabula/internal/testutil"
	clitest "github.com/thenoetrevino/tabula/internal/testutil/cli"
	"github.com/thenoetrevino/tabula/internal/tui/state"
)

func newTestModel(t *testing.T) (Model, *sql.DB) {
	t.Helper()
	db, a := clitest.SetupCLITest(t)
	m := InitialModel(context.Background(), a, config.Default())
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, db
}

func seedProducts(t *testing.T, db *sql.DB) {
	t.Helper()
	testutil.CreateProductsTable(t, db)
	testutil.InsertTestRows(t, db, "products",
		models.Row{int64(1), "Product X", int64(100), int64(10)},
		models.Row{int64(2), "Product Y", int64(250), int64(0)},
	)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok, "Update should return tui.Model")
	return out
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func currentNotification(t *testing.T, m Model) state.Notification {
	t.Helper()
	n, ok := m.NotificationState.Current()
	require.True(t, ok, "expected a notification")
	return n
}

func TestView_LoadingBeforeResize(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	m := InitialModel(context.Background(), a, config.Default())

	assert.Equal(t, "Loading...", m.View().Content)
}

func TestView_ShowsInputs(t *testing.T) {
	m, _ := newTestModel(t)

	content := m.View().Content
	assert.Contains(t, content, "tabula")
	assert.Contains(t, content, "Table name")
	assert.Contains(t, content, "SQL")
}

func TestFocus_TabCycles(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, 4, m.FormState.FocusCount())

	for _, want := range []int{1, 2, 3, 0} {
		m = send(t, m, keyCode(tea.KeyTab))
		assert.Equal(t, want, m.UIState.Focus())
	}

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 3, m.UIState.Focus(), "shift+tab from the first input wraps to SQL")
	assert.True(t, m.FormState.SQL.Focused())
	assert.False(t, m.FormState.TableName.Focused())
}

func TestFocus_AddColumnFocusesNewPair(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, ctrl('a'))

	require.Len(t, m.FormState.Columns, 2)
	assert.Equal(t, m.FormState.ColumnNameIndex(1), m.UIState.Focus())
	assert.True(t, m.FormState.Columns[1].Name.Focused())
	assert.Equal(t, 6, m.FormState.FocusCount())
}

func TestCreateTable_FromInputs(t *testing.T) {
	m, db := newTestModel(t)
	m = send(t, m, ctrl('a'))

	m.FormState.TableName.SetValue("products")
	m.FormState.Columns[0].Name.SetValue("id")
	m.FormState.Columns[0].Type.SetValue("INTEGER")
	m.FormState.Columns[1].Name.SetValue("name")
	m.FormState.Columns[1].Type.SetValue("VARCHAR(20)")

	m = send(t, m, ctrl('t'))

	assert.Equal(t, state.MessageMode, m.UIState.Mode())
	n := currentNotification(t, m)
	assert.Equal(t, state.LevelInfo, n.Level)
	assert.Contains(t, n.Message, "products")
	assert.Equal(t, int64(0), testutil.CountRows(t, db, "products"))
}

func TestCreateTable_BlankTypeDefaultsToText(t *testing.T) {
	m, _ := newTestModel(t)
	m.FormState.TableName.SetValue("notes")
	m.FormState.Columns[0].Name.SetValue("body")

	m = send(t, m, ctrl('t'))

	require.Equal(t, state.LevelInfo, currentNotification(t, m).Level)
	table, err := m.App.TableService.DescribeTable(context.Background(), "notes")
	require.NoError(t, err)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, "TEXT", table.Columns[0].Type)
}

func TestCreateTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		column  string
		wantMsg string
	}{
		{"missing table name", "", "id", "table name"},
		{"missing columns", "products", "", "column"},
		{"invalid identifier", "products; DROP TABLE x", "id", "identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m.FormState.TableName.SetValue(tt.table)
			m.FormState.Columns[0].Name.SetValue(tt.column)

			m = send(t, m, ctrl('t'))

			n := currentNotification(t, m)
			assert.Equal(t, state.LevelError, n.Level)
			assert.Contains(t, strings.ToLower(n.Message), tt.wantMsg)
		})
	}
}

func TestMessage_EnterDismisses(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, ctrl('t'))
	require.Equal(t, state.MessageMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "Create table failed")

	m = send(t, m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.False(t, m.NotificationState.HasAny())
}

func TestRunQuery_ShowsResult(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.SQL.SetValue("SELECT * FROM products WHERE id = 1")

	m = send(t, m, ctrl('r'))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	require.NotNil(t, m.ResultState.Last)
	require.Len(t, m.ResultState.Last.Rows, 1)
	assert.Equal(t, models.Row{int64(1), "Product X", int64(100), int64(10)}, m.ResultState.Last.Rows[0])
	assert.Equal(t, "1 row", m.ResultState.Status)
	assert.Contains(t, m.ResultState.Output.View(), "Product X")
}

func TestRunQuery_EnterOnSQLInput(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.SQL.SetValue("SELECT * FROM products WHERE 1=0")
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, m.FormState.SQLIndex(), m.UIState.Focus())

	m = send(t, m, keyCode(tea.KeyEnter))

	require.NotNil(t, m.ResultState.Last)
	assert.Equal(t, 0, m.ResultState.Last.Len())
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestRunQuery_MissingTable(t *testing.T) {
	m, _ := newTestModel(t)
	m.FormState.SQL.SetValue("SELECT * FROM nope")

	m = send(t, m, ctrl('r'))

	assert.Equal(t, state.MessageMode, m.UIState.Mode())
	assert.Equal(t, state.LevelError, currentNotification(t, m).Level)
}

func TestVisualize_ChartMode(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.SQL.SetValue("SELECT name, price FROM products")

	m = send(t, m, ctrl('g'))

	require.Equal(t, state.ChartMode, m.UIState.Mode())
	require.NotNil(t, m.ResultState.Chart)
	content := m.View().Content
	assert.Contains(t, content, "Product Y")
	assert.Contains(t, content, "price")

	m = send(t, m, keyCode(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestVisualize_NoNumericColumns(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.SQL.SetValue("SELECT name FROM products")

	m = send(t, m, ctrl('g'))

	assert.Equal(t, state.MessageMode, m.UIState.Mode())
	assert.Equal(t, state.LevelError, currentNotification(t, m).Level)
}

func TestHelp_Toggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, keyCode(tea.KeyF1))
	require.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "tabula keys")

	m = send(t, m, keyCode(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(ctrl('c'))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestQuit_CancelledContext(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := InitialModel(ctx, a, config.Default())
	cancel()

	_, cmd := m.Update(keyCode(tea.KeyTab))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestForms_RequireTableName(t *testing.T) {
	for _, k := range []rune{'w', 'u', 'd', 'e', 'o'} {
		m, _ := newTestModel(t)

		m = send(t, m, ctrl(k))

		assert.Equal(t, state.MessageMode, m.UIState.Mode(), "ctrl+%c", k)
		assert.Nil(t, m.FormState.Form)
	}
}

func TestForms_OpenAndCancel(t *testing.T) {
	tests := []struct {
		key  rune
		mode state.Mode
	}{
		{'w', state.InsertMode},
		{'u', state.UpdateMode},
		{'d', state.DeleteMode},
		{'e', state.ExportMode},
		{'o', state.ImportMode},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			m.FormState.TableName.SetValue("products")

			m = send(t, m, ctrl(tt.key))
			require.Equal(t, tt.mode, m.UIState.Mode())
			require.NotNil(t, m.FormState.Form)
			assert.NotEmpty(t, m.View().Content)

			m = send(t, m, keyCode(tea.KeyEscape))
			assert.Equal(t, state.NormalMode, m.UIState.Mode())
			assert.Nil(t, m.FormState.Form)
		})
	}
}

func TestForms_QuitKeyExits(t *testing.T) {
	m, _ := newTestModel(t)
	m.FormState.TableName.SetValue("products")
	m = send(t, m, ctrl('w'))
	require.Equal(t, state.InsertMode, m.UIState.Mode())

	_, cmd := m.Update(ctrl('c'))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestTransferForm_DefaultsToConfiguredFormat(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	cfg := config.Default()
	cfg.Export.DefaultFormat = "xlsx"
	m := InitialModel(context.Background(), a, cfg)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.FormState.TableName.SetValue("products")

	m = send(t, m, ctrl('e'))

	assert.Equal(t, "xlsx", m.FormState.FileFormat)
}

func TestSubmitInsert(t *testing.T) {
	m, db := newTestModel(t)
	testutil.CreateProductsTable(t, db)
	m.FormState.TableName.SetValue("products")
	m.FormState.InsertValues = `1, "Product X", 100, 10`

	m.submitInsert()

	assert.Equal(t, int64(1), testutil.CountRows(t, db, "products"))
	assert.Equal(t, state.LevelInfo, currentNotification(t, m).Level)
	require.NotNil(t, m.ResultState.Last, "table should be shown after the insert")
	assert.Equal(t, 1, m.ResultState.Last.Len())
}

func TestSubmitInsert_ArityMismatch(t *testing.T) {
	m, db := newTestModel(t)
	testutil.CreateProductsTable(t, db)
	m.FormState.TableName.SetValue("products")
	m.FormState.InsertValues = "1, Product X"

	m.submitInsert()

	assert.Equal(t, int64(0), testutil.CountRows(t, db, "products"))
	assert.Equal(t, state.LevelError, currentNotification(t, m).Level)
}

func TestSubmitUpdate(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.TableName.SetValue("products")
	m.FormState.UpdateSet = "price=120, qty=8"
	m.FormState.UpdateWhere = "id = 1"

	m.submitUpdate()

	n := currentNotification(t, m)
	assert.Equal(t, state.LevelInfo, n.Level)
	assert.Contains(t, n.Message, "Updated 1 row")

	var price, qty int64
	require.NoError(t, db.QueryRow("SELECT price, qty FROM products WHERE id = 1").Scan(&price, &qty))
	assert.Equal(t, int64(120), price)
	assert.Equal(t, int64(8), qty)

	require.NoError(t, db.QueryRow("SELECT price FROM products WHERE id = 2").Scan(&price))
	assert.Equal(t, int64(250), price, "non-matching rows are untouched")
}

func TestSubmitDelete(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.TableName.SetValue("products")
	m.FormState.DeleteWhere = "qty = 0"

	m.submitDelete()
	assert.Equal(t, int64(2), testutil.CountRows(t, db, "products"), "unconfirmed delete is a no-op")
	assert.False(t, m.NotificationState.HasAny())

	m.FormState.DeleteConfirm = true
	m.submitDelete()
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "products"))
	assert.Contains(t, currentNotification(t, m).Message, "Deleted 1 row")
}

func TestSubmitDelete_UnsafeClause(t *testing.T) {
	m, db := newTestModel(t)
	seedProducts(t, db)
	m.FormState.TableName.SetValue("products")
	m.FormState.DeleteWhere = "1=1; DROP TABLE products"
	m.FormState.DeleteConfirm = true

	m.submitDelete()

	assert.Equal(t, state.LevelError, currentNotification(t, m).Level)
	assert.Equal(t, int64(2), testutil.CountRows(t, db, "products"))
}

func TestSubmitExportImport_RoundTrip(t *testing.T) {
	for _, format := range models.Formats {
		t.Run(string(format), func(t *testing.T) {
			m, db := newTestModel(t)
			seedProducts(t, db)
			path := filepath.Join(t.TempDir(), "products"+format.Extension())

			m.FormState.TableName.SetValue("products")
			m.FormState.FilePath = path
			m.FormState.FileFormat = string(format)
			m.submitExport()
			require.Equal(t, state.LevelInfo, currentNotification(t, m).Level)
			m.NotificationState.Clear()

			_, err := db.Exec("DELETE FROM products")
			require.NoError(t, err)

			m.submitImport()
			require.Equal(t, state.LevelInfo, currentNotification(t, m).Level)
			assert.Equal(t, int64(2), testutil.CountRows(t, db, "products"))
		})
	}
}

func TestSubmitImport_MissingTable(t *testing.T) {
	m, _ := newTestModel(t)
	m.FormState.TableName.SetValue("nope")
	m.FormState.FilePath = filepath.Join(t.TempDir(), "nope.csv")
	m.FormState.FileFormat = "csv"

	m.submitImport()

	assert.Equal(t, state.LevelError, currentNotification(t, m).Level)
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []models.Assignment
		wantErr bool
	}{
		{
			name: "single pair",
			line: "price=120",
			want: []models.Assignment{{Column: "price", Value: "120"}},
		},
		{
			name: "several pairs with spaces",
			line: "price = 120, qty=8",
			want: []models.Assignment{{Column: "price", Value: "120"}, {Column: "qty", Value: "8"}},
		},
		{
			name: "quoted value with comma",
			line: `"name=Nut, hex",qty=1`,
			want: []models.Assignment{{Column: "name", Value: "Nut, hex"}, {Column: "qty", Value: "1"}},
		},
		{
			name: "empty value is NULL",
			line: "qty=",
			want: []models.Assignment{{Column: "qty", Value: nil}},
		},
		{name: "missing equals", line: "price", wantErr: true},
		{name: "missing column", line: "=5", wantErr: true},
		{name: "only separators", line: ",", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
