package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tabula/internal/models"
)

func formatOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Formats))
	for _, f := range models.Formats {
		opts = append(opts, huh.NewOption(string(f), string(f)))
	}
	return opts
}

// CreateTransferForm asks for a file path and its format. title reads
// "Export products" or "Import products".
func CreateTransferForm(title string, path, format *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("path").
			Title(title).
			Description("File path").
			Placeholder("products.csv").
			Validate(required("path")).
			Value(path),

		huh.NewSelect[string]().
			Key("format").
			Title("Format").
			Options(formatOptions()...).
			Value(format),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}
