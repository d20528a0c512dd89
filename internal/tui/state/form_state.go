package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tabula/internal/models"
)

// ColumnInput is one (name, type) pair of the table definition
type ColumnInput struct {
	Name textinput.Model
	Type textinput.Model
}

// FormState holds the main screen inputs and the values bound to the
// currently open huh form.
//
// Focus indexes run: table name, then name/type for each column pair,
// then the SQL input.
type FormState struct {
	TableName textinput.Model
	Columns   []ColumnInput
	SQL       textinput.Model

	// Active huh form and the values it writes into
	Form *huh.Form

	InsertValues  string
	UpdateSet     string
	UpdateWhere   string
	DeleteWhere   string
	DeleteConfirm bool
	FilePath      string
	FileFormat    string
}

// NewFormState creates the main inputs with one empty column pair
func NewFormState() *FormState {
	s := &FormState{
		TableName: newInput("Table name", "products"),
		SQL:       newInput("SQL", "SELECT * FROM products"),
	}
	// SQL is run verbatim, so it is never truncated
	s.SQL.CharLimit = 0
	s.AddColumn()
	return s
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt + ": "
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	return ti
}

// AddColumn appends an empty (name, type) pair and returns its index
func (s *FormState) AddColumn() int {
	s.Columns = append(s.Columns, ColumnInput{
		Name: newInput("Column", "name"),
		Type: newInput("Type", "TEXT"),
	})
	return len(s.Columns) - 1
}

// FocusCount is the number of focusable inputs on the main screen
func (s *FormState) FocusCount() int {
	return 2 + 2*len(s.Columns)
}

// SQLIndex is the focus index of the SQL input
func (s *FormState) SQLIndex() int {
	return s.FocusCount() - 1
}

// ColumnNameIndex is the focus index of column i's name input
func (s *FormState) ColumnNameIndex(i int) int {
	return 1 + 2*i
}

// Input returns the input at focus index, or nil if out of range
func (s *FormState) Input(index int) *textinput.Model {
	switch {
	case index == 0:
		return &s.TableName
	case index == s.SQLIndex():
		return &s.SQL
	case index > 0 && index < s.SQLIndex():
		col := &s.Columns[(index-1)/2]
		if (index-1)%2 == 0 {
			return &col.Name
		}
		return &col.Type
	}
	return nil
}

// ColumnDefs returns the pairs whose name is filled in. A blank type
// defaults to TEXT.
func (s *FormState) ColumnDefs() []models.ColumnDef {
	var defs []models.ColumnDef
	for _, c := range s.Columns {
		name := strings.TrimSpace(c.Name.Value())
		if name == "" {
			continue
		}
		typ := strings.TrimSpace(c.Type.Value())
		if typ == "" {
			typ = "TEXT"
		}
		defs = append(defs, models.ColumnDef{Name: name, Type: typ})
	}
	return defs
}

// ResetFormValues clears the values bound to huh forms
func (s *FormState) ResetFormValues() {
	s.Form = nil
	s.InsertValues = ""
	s.UpdateSet = ""
	s.UpdateWhere = ""
	s.DeleteWhere = ""
	s.DeleteConfirm = false
	s.FilePath = ""
	s.FileFormat = ""
}
