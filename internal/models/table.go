package models

// ColumnDef is a column declaration used when creating a table.
// Type is the declared SQLite type (e.g. "INTEGER", "VARCHAR(20)", "TEXT NOT NULL").
type ColumnDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Column describes an existing column as reported by the database
type Column struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"not_null"`
	Default    *string `json:"default"`
	PrimaryKey bool    `json:"primary_key"`
}

// Table is a user table together with its declared columns
type Table struct {
	Name     string    `json:"name"`
	Columns  []*Column `json:"columns"`
	RowCount int64     `json:"row_count"`
}

// ColumnNames returns the names of the table's columns in declaration order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Assignment is a single column = value pair of an UPDATE's SET list.
// Value is always bound as a statement parameter.
type Assignment struct {
	Column string
	Value  any
}
