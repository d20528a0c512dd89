package notifications

import "github.com/thenoetrevino/tabula/internal/tui/theme"

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Error:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.Delete,
		}
	default:
		return style{
			icon:             "✓",
			title:            "Success",
			foreground:       theme.InfoFg,
			background:       theme.InfoBg,
			borderForeground: theme.Create,
		}
	}
}
