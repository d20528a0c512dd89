package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func noSemicolon(s string) error {
	if strings.Contains(s, ";") {
		return errors.New("a single condition only, no ';'")
	}
	return required("condition")(s)
}

// CreateInsertForm asks for one row as a comma-separated line of values
func CreateInsertForm(table string, values *string) *huh.Form {
	fields := []huh.Field{
		huh.NewNote().
			Title("Insert into " + table).
			Description("Values in column order. Quote values containing commas.\nAn empty value inserts NULL."),

		huh.NewInput().
			Key("values").
			Title("Values").
			Placeholder(`1, "Product X", 100, 10`).
			Validate(required("values")).
			Value(values),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateUpdateForm asks for the SET assignments and the WHERE condition
func CreateUpdateForm(table string, set, where *string) *huh.Form {
	fields := []huh.Field{
		huh.NewNote().
			Title("Update " + table),

		huh.NewInput().
			Key("set").
			Title("Set").
			Description("column=value pairs separated by commas").
			Placeholder("price=120, qty=8").
			Validate(required("set")).
			Value(set),

		huh.NewInput().
			Key("where").
			Title("Where").
			Placeholder("id = 1").
			Validate(noSemicolon).
			Value(where),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateDeleteForm asks for the WHERE condition and a confirmation
func CreateDeleteForm(table string, where *string, confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("where").
			Title("Delete from " + table + " where").
			Placeholder("qty = 0").
			Validate(noSemicolon).
			Value(where),

		huh.NewConfirm().
			Key("confirm").
			Title("Delete matching rows?").
			Affirmative("Delete").
			Negative("Cancel").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}
