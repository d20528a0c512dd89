package table

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
)

// ListCmd returns the table list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tables in the database",
		Long: `List all user tables with their column and row counts.

Examples:
  # Human-readable list
  tabula table list

  # JSON output for agents
  tabula table list --json

  # Quiet mode (one name per line)
  tabula table list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runList)),
	}

	cli.AddOutputFlags(cmd, "Minimal output (names only)")

	return cmd
}

// TableSummary is one line of table list
type TableSummary struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Rows    int64  `json:"rows"`
}

// ListResult is the outcome of table list
type ListResult struct {
	Tables []TableSummary `json:"tables"`
}

// QuietLines returns one table name per line
func (r ListResult) QuietLines() []string {
	names := make([]string, len(r.Tables))
	for i, t := range r.Tables {
		names[i] = t.Name
	}
	return names
}

// Present renders the tables as a text table
func (r ListResult) Present(_ *cli.OutputFormatter) error {
	if len(r.Tables) == 0 {
		fmt.Println("No tables found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Table", "Columns", "Rows"})
	table.SetAutoFormatHeaders(false)
	for _, t := range r.Tables {
		table.Append([]string{t.Name, fmt.Sprintf("%d", t.Columns), humanize.Comma(t.Rows)})
	}
	table.Render()
	return nil
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	names, err := c.App.TableService.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	result := ListResult{Tables: make([]TableSummary, 0, len(names))}
	for _, name := range names {
		t, err := c.App.TableService.DescribeTable(ctx, name)
		if err != nil {
			return nil, err
		}
		result.Tables = append(result.Tables, TableSummary{
			Name:    t.Name,
			Columns: len(t.Columns),
			Rows:    t.RowCount,
		})
	}
	return result, nil
}
