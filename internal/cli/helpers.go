package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/models"
	"github.com/thenoetrevino/tabula/internal/transfer"
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("invalid usage")

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// FormatterFor builds the OutputFormatter selected by the command's flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ParseRecord splits one comma-separated line into fields. Quoted fields may
// contain commas, the same as a CSV file line.
func ParseRecord(line string) ([]string, error) {
	record, err := transfer.ParseRecord(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return record, nil
}

// ParseValues turns record fields into bind values; empty fields become NULL
func ParseValues(record []string) models.Row {
	return transfer.RowFromRecord(record)
}

// ParseRows parses every --row flag value into a row
func ParseRows(lines []string) ([]models.Row, error) {
	rows := make([]models.Row, 0, len(lines))
	for _, line := range lines {
		record, err := ParseRecord(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ParseValues(record))
	}
	return rows, nil
}

// ParseAssignments parses column=value pairs. An empty value assigns NULL.
func ParseAssignments(pairs []string) ([]models.Assignment, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: at least one --set column=value is required", ErrUsage)
	}

	assignments := make([]models.Assignment, 0, len(pairs))
	for _, pair := range pairs {
		column, value, ok := strings.Cut(pair, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("%w: expected column=value, got %q", ErrUsage, pair)
		}
		var bound any
		if value != "" {
			bound = value
		}
		assignments = append(assignments, models.Assignment{Column: column, Value: bound})
	}
	return assignments, nil
}

// ParseArgs converts --arg flag values into WHERE bind arguments
func ParseArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// ParseFormatFlag resolves --format, falling back to the file extension
func ParseFormatFlag(name, path string) (models.Format, error) {
	if strings.TrimSpace(name) != "" {
		return models.ParseFormat(name)
	}
	return models.FormatFromPath(path)
}
