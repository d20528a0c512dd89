package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tabula/internal/config"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Rows:"
	ValueStyle    lipgloss.Style // For field values

	// Chart palette, one color per series
	ChartPalette []string
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	ChartPalette = append([]string(nil), colors.Chart...)
}

func init() {
	Init(config.Default().ColorScheme)
}
