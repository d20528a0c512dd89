package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tabula/internal/models"
	"github.com/thenoetrevino/tabula/internal/tui/theme"
)

// nullText marks NULL cells in the output pane
const nullText = "NULL"

// RenderResultSet draws rs as a bordered table followed by a row count.
// Statements without result columns render a short confirmation instead.
func RenderResultSet(rs *models.ResultSet, width int) string {
	if rs == nil || len(rs.Columns) == 0 {
		return "Statement executed (no result columns)"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)
	nullStyle := cellStyle.
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	rows := make([][]string, len(rs.Rows))
	for i, row := range rs.Rows {
		cells := make([]string, len(rs.Columns))
		for j := range cells {
			if j < len(row) && row[j] != nil {
				cells[j] = models.FormatValue(row[j])
			} else {
				cells[j] = nullText
			}
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		Headers(rs.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rs.Rows) && (col >= len(rs.Rows[row]) || rs.Rows[row][col] == nil) {
				return nullStyle
			}
			return cellStyle
		})
	if width > 0 && lipgloss.Width(t.Render()) > width {
		t = t.Width(width)
	}

	count := rs.Len()
	return fmt.Sprintf("%s\n(%s %s)", t.Render(), humanize.Comma(int64(count)), plural(int64(count), "row"))
}
