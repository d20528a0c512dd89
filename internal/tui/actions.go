package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tabula/internal/database"
	"github.com/thenoetrevino/tabula/internal/models"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
	"github.com/thenoetrevino/tabula/internal/transfer"
	"github.com/thenoetrevino/tabula/internal/tui/huhforms"
	"github.com/thenoetrevino/tabula/internal/tui/state"
)

var (
	errNoTable   = errors.New("enter a table name first")
	errNoColumns = errors.New("fill in at least one column name")
)

// notify queues a message dialog and switches to MessageMode
func (m Model) notify(level state.NotificationLevel, title, message string) {
	m.NotificationState.Add(level, title, message)
	m.UIState.SetMode(state.MessageMode)
}

func (m Model) success(message string) {
	m.ResultState.SetStatus(message, false)
	m.notify(state.LevelInfo, "", message)
}

func (m Model) failure(title string, err error) {
	m.ResultState.SetStatus(title+" failed", true)
	m.notify(state.LevelError, title+" failed", err.Error())
}

// tableName returns the trimmed table name input
func (m Model) tableName() string {
	return strings.TrimSpace(m.FormState.TableName.Value())
}

func (m Model) createTable() {
	name := m.tableName()
	if name == "" {
		m.failure("Create table", errNoTable)
		return
	}
	defs := m.FormState.ColumnDefs()
	if len(defs) == 0 {
		m.failure("Create table", errNoColumns)
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	err := m.App.TableService.CreateTable(ctx, tableservice.CreateTableRequest{
		Name:    name,
		Columns: defs,
	})
	if err != nil {
		m.failure("Create table", err)
		return
	}
	m.success(fmt.Sprintf("Table '%s' ready (%d columns)", name, len(defs)))
}

func (m Model) runQuery() {
	query := strings.TrimSpace(m.FormState.SQL.Value())

	ctx, cancel := m.dbContext()
	defer cancel()

	rs, err := m.App.TableService.RunQuery(ctx, query)
	if err != nil {
		m.failure("Query", err)
		return
	}
	m.showResult(rs)
	m.ResultState.SetStatus(fmt.Sprintf("%s %s", humanize.Comma(int64(rs.Len())), plural(int64(rs.Len()), "row")), false)
}

func (m Model) visualize() {
	query := strings.TrimSpace(m.FormState.SQL.Value())

	ctx, cancel := m.dbContext()
	defer cancel()

	c, err := m.App.TableService.Visualize(ctx, query)
	if err != nil {
		m.failure("Visualize", err)
		return
	}
	m.ResultState.Chart = c
	m.UIState.SetMode(state.ChartMode)
}

// showResult renders rs into the output pane
func (m Model) showResult(rs *models.ResultSet) {
	m.ResultState.Show(rs, RenderResultSet(rs, m.ResultState.Output.Width()))
}

// refreshTable shows the whole table after a write. Failures are ignored,
// the write itself already succeeded.
func (m Model) refreshTable(name string) {
	if database.ValidateIdentifier(name) != nil {
		return
	}
	ctx, cancel := m.dbContext()
	defer cancel()

	rs, err := m.App.TableService.RunQuery(ctx, "SELECT * FROM "+database.QuoteIdent(name))
	if err == nil {
		m.showResult(rs)
	}
}

func (m Model) openInsertForm() tea.Cmd {
	name := m.tableName()
	if name == "" {
		m.failure("Insert", errNoTable)
		return nil
	}
	m.FormState.ResetFormValues()
	return m.openForm(state.InsertMode, huhforms.CreateInsertForm(name, &m.FormState.InsertValues))
}

func (m Model) openUpdateForm() tea.Cmd {
	name := m.tableName()
	if name == "" {
		m.failure("Update", errNoTable)
		return nil
	}
	m.FormState.ResetFormValues()
	return m.openForm(state.UpdateMode,
		huhforms.CreateUpdateForm(name, &m.FormState.UpdateSet, &m.FormState.UpdateWhere))
}

func (m Model) openDeleteForm() tea.Cmd {
	name := m.tableName()
	if name == "" {
		m.failure("Delete", errNoTable)
		return nil
	}
	m.FormState.ResetFormValues()
	return m.openForm(state.DeleteMode,
		huhforms.CreateDeleteForm(name, &m.FormState.DeleteWhere, &m.FormState.DeleteConfirm))
}

func (m Model) openTransferForm(mode state.Mode) tea.Cmd {
	title := "Export"
	if mode == state.ImportMode {
		title = "Import"
	}
	name := m.tableName()
	if name == "" {
		m.failure(title, errNoTable)
		return nil
	}

	m.FormState.ResetFormValues()
	m.FormState.FileFormat = m.Config.Export.DefaultFormat
	if m.FormState.FileFormat == "" {
		m.FormState.FileFormat = string(models.FormatCSV)
	}
	return m.openForm(mode, huhforms.CreateTransferForm(
		title+" "+name, &m.FormState.FilePath, &m.FormState.FileFormat))
}

func (m Model) submitInsert() {
	name := m.tableName()
	record, err := transfer.ParseRecord(m.FormState.InsertValues)
	if err != nil {
		m.failure("Insert", err)
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	n, err := m.App.TableService.InsertRows(ctx, tableservice.InsertRowsRequest{
		Table: name,
		Rows:  []models.Row{transfer.RowFromRecord(record)},
	})
	if err != nil {
		m.failure("Insert", err)
		return
	}
	m.refreshTable(name)
	m.success(fmt.Sprintf("Inserted %d %s into '%s'", n, plural(int64(n), "row"), name))
}

func (m Model) submitUpdate() {
	name := m.tableName()
	set, err := parseAssignments(m.FormState.UpdateSet)
	if err != nil {
		m.failure("Update", err)
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	n, err := m.App.TableService.UpdateRows(ctx, tableservice.UpdateRowsRequest{
		Table: name,
		Set:   set,
		Where: m.FormState.UpdateWhere,
	})
	if err != nil {
		m.failure("Update", err)
		return
	}
	m.refreshTable(name)
	m.success(fmt.Sprintf("Updated %s %s in '%s'", humanize.Comma(n), plural(n, "row"), name))
}

func (m Model) submitDelete() {
	if !m.FormState.DeleteConfirm {
		m.ResultState.SetStatus("Delete cancelled", false)
		return
	}
	name := m.tableName()

	ctx, cancel := m.dbContext()
	defer cancel()

	n, err := m.App.TableService.DeleteRows(ctx, tableservice.DeleteRowsRequest{
		Table: name,
		Where: m.FormState.DeleteWhere,
	})
	if err != nil {
		m.failure("Delete", err)
		return
	}
	m.refreshTable(name)
	m.success(fmt.Sprintf("Deleted %s %s from '%s'", humanize.Comma(n), plural(n, "row"), name))
}

func (m Model) transferRequest() tableservice.TransferRequest {
	return tableservice.TransferRequest{
		Table:  m.tableName(),
		Path:   strings.TrimSpace(m.FormState.FilePath),
		Format: models.Format(m.FormState.FileFormat),
	}
}

func (m Model) submitExport() {
	req := m.transferRequest()

	ctx, cancel := m.dbContext()
	defer cancel()

	n, err := m.App.TableService.Export(ctx, req)
	if err != nil {
		m.failure("Export", err)
		return
	}

	msg := fmt.Sprintf("Exported %s %s from '%s' to %s",
		humanize.Comma(int64(n)), plural(int64(n), "row"), req.Table, req.Path)
	if info, err := os.Stat(req.Path); err == nil {
		msg += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(info.Size())))
	}
	m.success(msg)
}

func (m Model) submitImport() {
	req := m.transferRequest()

	ctx, cancel := m.dbContext()
	defer cancel()

	n, err := m.App.TableService.Import(ctx, req)
	if err != nil {
		m.failure("Import", err)
		return
	}
	m.refreshTable(req.Table)
	m.success(fmt.Sprintf("Imported %s %s into '%s' from %s",
		humanize.Comma(int64(n)), plural(int64(n), "row"), req.Table, req.Path))
}

// parseAssignments reads "col=value, col=value". Values may be quoted
// like CSV fields; an empty value assigns NULL.
func parseAssignments(line string) ([]models.Assignment, error) {
	pairs, err := transfer.ParseRecord(line)
	if err != nil {
		return nil, err
	}

	var set []models.Assignment
	for _, pair := range pairs {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		column, value, ok := strings.Cut(pair, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("expected column=value, got %q", pair)
		}
		var bound any
		if value = strings.TrimSpace(value); value != "" {
			bound = value
		}
		set = append(set, models.Assignment{Column: column, Value: bound})
	}
	if len(set) == 0 {
		return nil, errors.New("at least one column=value is required")
	}
	return set, nil
}

func plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
