package config

// KeyMappings defines all configurable key bindings.
// Text inputs keep focus in the form, so actions default to ctrl chords.
type KeyMappings struct {
	// Form
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`
	AddColumn string `yaml:"add_column"`

	// Table operations
	CreateTable string `yaml:"create_table"`
	InsertRow   string `yaml:"insert_row"`
	UpdateRows  string `yaml:"update_rows"`
	DeleteRows  string `yaml:"delete_rows"`

	// Queries
	RunQuery  string `yaml:"run_query"`
	Visualize string `yaml:"visualize"`

	// Files
	Export string `yaml:"export"`
	Import string `yaml:"import"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextField: "tab",
		PrevField: "shift+tab",
		AddColumn: "ctrl+a",

		CreateTable: "ctrl+t",
		InsertRow:   "ctrl+w",
		UpdateRows:  "ctrl+u",
		DeleteRows:  "ctrl+d",

		RunQuery:  "ctrl+r",
		Visualize: "ctrl+g",

		Export: "ctrl+e",
		Import: "ctrl+o",

		ShowHelp: "f1",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.NextField, defaults.NextField)
	fill(&k.PrevField, defaults.PrevField)
	fill(&k.AddColumn, defaults.AddColumn)
	fill(&k.CreateTable, defaults.CreateTable)
	fill(&k.InsertRow, defaults.InsertRow)
	fill(&k.UpdateRows, defaults.UpdateRows)
	fill(&k.DeleteRows, defaults.DeleteRows)
	fill(&k.RunQuery, defaults.RunQuery)
	fill(&k.Visualize, defaults.Visualize)
	fill(&k.Export, defaults.Export)
	fill(&k.Import, defaults.Import)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
