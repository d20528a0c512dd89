package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for focus, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - success dialogs
	Edit   string `yaml:"edit"`   // Blue - update forms
	Delete string `yaml:"delete"` // Red - delete forms and failures

	// UI element colors
	Border        string `yaml:"border"`
	FocusedBorder string `yaml:"focused_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Dialog colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`

	// Bar colors, one per chart series
	Chart []string `yaml:"chart"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset, true)
}

// MergeFrom copies colors from other. With onlyEmpty set, colors already
// present on c are kept.
func (c *ColorScheme) MergeFrom(other ColorScheme, onlyEmpty bool) {
	merge := func(dst *string, src string) {
		if src == "" {
			return
		}
		if onlyEmpty && *dst != "" {
			return
		}
		*dst = src
	}

	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Edit, other.Edit)
	merge(&c.Delete, other.Delete)
	merge(&c.Border, other.Border)
	merge(&c.FocusedBorder, other.FocusedBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)

	if len(other.Chart) > 0 && (!onlyEmpty || len(c.Chart) == 0) {
		c.Chart = append([]string(nil), other.Chart...)
	}
}
