package table

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	"github.com/thenoetrevino/tabula/internal/models"
)

// DescribeCmd returns the table describe subcommand
func DescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Show a table's columns and row count",
		Long: `Show the declared columns of a table.

Examples:
  tabula table describe products
  tabula table describe products --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.Func(runDescribe)),
	}

	cmd.Flags().Int("width", 80, "Wrap width for the rendered description")
	cli.AddOutputFlags(cmd, "Minimal output (row count only)")

	return cmd
}

// DescribeResult wraps a table description
type DescribeResult struct {
	*models.Table
	width int
}

// GetCount returns the row count for quiet mode
func (r DescribeResult) GetCount() int64 {
	return r.RowCount
}

// Present renders the description as markdown
func (r DescribeResult) Present(f *cli.OutputFormatter) error {
	return f.Markdown(DescribeMarkdown(r.Table), r.width)
}

// DescribeMarkdown renders a table description as a markdown document
func DescribeMarkdown(t *models.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "**Rows:** %s\n\n", humanize.Comma(t.RowCount))
	b.WriteString("| # | Column | Type | Not null | Default | Key |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, c := range t.Columns {
		def := ""
		if c.Default != nil {
			def = *c.Default
		}
		key := ""
		if c.PrimaryKey {
			key = "PK"
		}
		notNull := ""
		if c.NotNull {
			notNull = "yes"
		}
		typ := c.Type
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n", c.Position, c.Name, typ, notNull, def, key)
	}
	return b.String()
}

func runDescribe(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	t, err := c.App.TableService.DescribeTable(ctx, args.Args[0])
	if err != nil {
		return nil, err
	}
	return DescribeResult{Table: t, width: args.GetInt("width", 80)}, nil
}
