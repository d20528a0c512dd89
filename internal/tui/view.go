package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tabula/internal/chart"
	"github.com/thenoetrevino/tabula/internal/tui/layers"
	"github.com/thenoetrevino/tabula/internal/tui/notifications"
	"github.com/thenoetrevino/tabula/internal/tui/state"
	"github.com/thenoetrevino/tabula/internal/tui/theme"
)

// View implements tea.Model. The main screen is the base layer; forms,
// dialogs and help are centered layers on top of it.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UIState.Mode() == state.ChartMode {
		view.Content = m.renderChart()
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderMain()),
	}

	var modal string
	switch mode := m.UIState.Mode(); {
	case mode.IsForm():
		modal = m.renderFormModal()
	case mode == state.MessageMode:
		if n, ok := m.NotificationState.Current(); ok {
			modal = notifications.RenderFromState(n, layers.CalculateModalWidth(m.UIState.Width()))
		}
	case mode == state.HelpMode:
		modal = m.renderHelp()
	}

	if layer := layers.CreateCenteredLayer(modal, m.UIState.Width(), m.UIState.Height()); layer != nil {
		layerStack = append(layerStack, layer)
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

func (m Model) renderMain() string {
	width := m.UIState.Width()

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render("tabula") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("  SQLite table manager")

	output := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Width(max(width-2, 1)).
		Render(m.ResultState.Output.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderInputs(),
		"",
		output,
		m.renderStatusBar(),
	)
}

func (m Model) renderInputs() string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	focused := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.FocusedBorder)).Render("▌")
	blurred := " "

	marker := func(index int) string {
		if m.UIState.Focus() == index {
			return focused
		}
		return blurred
	}

	lines := []string{
		marker(0) + m.FormState.TableName.View(),
		labelStyle.Render(fmt.Sprintf(" Columns (%s to add)", m.Config.KeyMappings.AddColumn)),
	}
	for i, c := range m.FormState.Columns {
		nameIdx := m.FormState.ColumnNameIndex(i)
		name := lipgloss.NewStyle().Width(36).Render(marker(nameIdx) + c.Name.View())
		lines = append(lines, fmt.Sprintf("  %d.", i+1)+name+marker(nameIdx+1)+c.Type.View())
	}
	lines = append(lines, marker(m.FormState.SQLIndex())+m.FormState.SQL.View())

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	km := m.Config.KeyMappings

	mode := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.Highlight)).
		Padding(0, 1).
		Render(m.UIState.Mode().String())

	hints := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf(" %s create  %s query  %s chart  %s help  %s quit",
			km.CreateTable, km.RunQuery, km.Visualize, km.ShowHelp, km.Quit))

	if m.ResultState.Status == "" {
		return mode + hints
	}
	severity := notifications.Info
	if m.ResultState.Failed {
		severity = notifications.Error
	}
	return mode + hints + "  " + notifications.RenderInline(severity, m.ResultState.Status)
}

func (m Model) renderFormModal() string {
	if m.FormState.Form == nil {
		return ""
	}
	borderColor := theme.Create
	switch m.UIState.Mode() {
	case state.UpdateMode:
		borderColor = theme.Edit
	case state.DeleteMode:
		borderColor = theme.Delete
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Render(m.FormState.Form.View())
}

func (m Model) renderChart() string {
	c := m.ResultState.Chart
	if c == nil {
		return "No chart"
	}
	width := max(m.UIState.Width()-4, 10)

	body := chart.Render(c, width, theme.Chart)
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("esc to return")

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, body, "", hint))
}
