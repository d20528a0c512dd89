package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/thenoetrevino/tabula/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Counted is implemented by results whose quiet form is a single number
type Counted interface {
	GetCount() int64
}

// Named is implemented by results whose quiet form is a name
type Named interface {
	GetName() string
}

// Lister is implemented by results whose quiet form is one line per item
type Lister interface {
	QuietLines() []string
}

// RowsResult reports how many rows an operation touched
type RowsResult struct {
	Action string `json:"action"`
	Table  string `json:"table"`
	Rows   int64  `json:"rows"`
	Path   string `json:"path,omitempty"`
	Format string `json:"format,omitempty"`
}

// GetCount returns the affected row count
func (r RowsResult) GetCount() int64 {
	return r.Rows
}

// String renders the human-readable summary
func (r RowsResult) String() string {
	noun := "rows"
	if r.Rows == 1 {
		noun = "row"
	}
	msg := fmt.Sprintf("✓ %s %s %s in '%s'", r.Action, humanize.Comma(r.Rows), noun, r.Table)
	if r.Path != "" {
		msg += fmt.Sprintf(" (%s: %s)", strings.ToUpper(r.Format), r.Path)
	}
	return msg
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		switch d := data.(type) {
		case Counted:
			fmt.Printf("%d\n", d.GetCount())
			return nil
		case Named:
			fmt.Println(d.GetName())
			return nil
		case Lister:
			for _, line := range d.QuietLines() {
				fmt.Println(line)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// ResultSet outputs query rows. Quiet mode prints bare CSV rows, JSON mode
// prints column names and row values, and the default is a text table.
func (f *OutputFormatter) ResultSet(rs *models.ResultSet) error {
	switch {
	case f.JSON:
		rows := rs.Rows
		if rows == nil {
			rows = []models.Row{}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"columns": rs.Columns,
			"rows":    rows,
			"count":   rs.Len(),
		})
	case f.Quiet:
		w := csv.NewWriter(os.Stdout)
		if err := w.WriteAll(rs.Strings()); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
		return nil
	}

	if len(rs.Columns) == 0 {
		fmt.Println("Statement executed (no result columns)")
		return nil
	}

	RenderTable(rs)
	fmt.Printf("(%s %s)\n", humanize.Comma(int64(rs.Len())), plural(rs.Len(), "row", "rows"))
	return nil
}

// RenderTable writes rs to stdout as an ASCII table
func RenderTable(rs *models.ResultSet) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(rs.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rs.Strings() {
		table.Append(row)
	}
	table.Render()
}

// Markdown renders markdown for the terminal, falling back to the raw text
func (f *OutputFormatter) Markdown(md string, width int) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, renderErr := renderer.Render(md); renderErr == nil {
			fmt.Print(rendered)
			return nil
		}
	}
	fmt.Print(md)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err using its mapped error code and returns it marked as reported
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
	return Reported(err)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
