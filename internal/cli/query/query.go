package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
)

// QueryCmd returns the query command
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run SQL and print the result",
		Long: `Run a SQL statement as written and print every result row.
A query that matches nothing prints an empty table, not an error.

Examples:
  tabula query "SELECT * FROM products"

  # Bound parameters
  tabula query "SELECT name FROM products WHERE price > ?" --arg=50

  # JSON output for agents
  tabula query "SELECT * FROM products" --json

  # Quiet mode prints bare CSV rows
  tabula query "SELECT id FROM products" --quiet
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Command(handler.Func(runQuery)),
	}

	cmd.Flags().StringArray("arg", nil, "Value bound to a ? in the statement (repeatable)")
	cli.AddOutputFlags(cmd, "Minimal output (CSV rows, no header)")

	return cmd
}

func runQuery(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	sql := strings.TrimSpace(strings.Join(args.Args, " "))
	if sql == "" {
		return nil, fmt.Errorf("%w: a SQL statement is required", cli.ErrUsage)
	}
	return c.App.TableService.RunQuery(ctx, sql, cli.ParseArgs(args.GetStringArray("arg"))...)
}
