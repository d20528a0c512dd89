package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tabula/internal/tui/layers"
	"github.com/thenoetrevino/tabula/internal/tui/theme"
)

type helpSection struct {
	title string
	keys  [][2]string
}

func (m Model) helpSections() []helpSection {
	km := m.Config.KeyMappings
	return []helpSection{
		{"Inputs", [][2]string{
			{km.NextField, "next input"},
			{km.PrevField, "previous input"},
			{km.AddColumn, "add a column pair"},
			{"enter", "next input / run query from SQL"},
		}},
		{"Tables", [][2]string{
			{km.CreateTable, "create table"},
			{km.InsertRow, "insert row"},
			{km.UpdateRows, "update rows"},
			{km.DeleteRows, "delete rows"},
		}},
		{"Queries", [][2]string{
			{km.RunQuery, "run SQL"},
			{km.Visualize, "chart SQL result"},
			{"pgup/pgdown", "scroll output"},
		}},
		{"Files", [][2]string{
			{km.Export, "export table"},
			{km.Import, "import into table"},
		}},
		{"Other", [][2]string{
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}
}

// renderHelp renders the key reference dialog
func (m Model) renderHelp() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	var b strings.Builder
	b.WriteString(titleStyle.Render("tabula keys"))
	b.WriteString("\n")
	for _, section := range m.helpSections() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&b, "  %s %s\n", keyStyle.Render(k[0]), descStyle.Render(k[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render("esc to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.FocusedBorder)).
		Padding(0, 1).
		Width(layers.HelpWidth).
		Render(b.String())
}
