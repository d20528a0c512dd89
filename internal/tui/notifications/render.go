package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tabula/internal/tui/state"
	"github.com/thenoetrevino/tabula/internal/tui/theme"
)

// dismissHint is shown under every dialog
const dismissHint = "enter / esc to close"

// Render renders a message dialog based on severity level
func Render(severity Severity, title, message string, maxWidth int) string {
	style := severity.style()
	if title == "" {
		title = style.title
	}

	headerText := style.icon + " " + title
	width := max(lipgloss.Width(headerText), lipgloss.Width(dismissHint))
	for _, line := range strings.Split(message, "\n") {
		width = max(width, lipgloss.Width(line))
	}
	if maxWidth > 0 {
		width = min(width, maxWidth)
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(width).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Width(width).
		Render(dismissHint)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a dialog from a state.Notification
func RenderFromState(n state.Notification, maxWidth int) string {
	switch n.Level {
	case state.LevelError:
		return Render(Error, n.Title, n.Message, maxWidth)
	default:
		return Render(Info, n.Title, n.Message, maxWidth)
	}
}

// RenderInline renders a compact one-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}
