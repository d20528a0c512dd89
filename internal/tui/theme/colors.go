package theme

import "github.com/thenoetrevino/tabula/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Title         string
	Subtle        string
	Normal        string
	Create        string
	Edit          string
	Delete        string
	Border        string
	FocusedBorder string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
	Chart         []string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	Border = colors.Border
	FocusedBorder = colors.FocusedBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	Chart = append([]string(nil), colors.Chart...)
}
