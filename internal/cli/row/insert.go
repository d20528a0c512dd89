package row

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// InsertCmd returns the row insert subcommand
func InsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert rows into a table",
		Long: `Insert one or more rows in a single transaction. Each --row is one
comma-separated line of values in column order; quote values containing commas.
An empty value inserts NULL. If any row fails, no rows are inserted.

Examples:
  tabula row insert --table=products --row="1,Product X,100,10"

  # Several rows at once
  tabula row insert --table=products --row="1,Widget,2.5,4" --row='2,"Nut, hex",0.1,100'

  # Quiet mode prints the number of rows inserted
  tabula row insert --table=products --row="3,Bolt,0.2,50" --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runInsert)),
	}

	cmd.Flags().String("table", "", "Table name (required)")
	cmd.Flags().StringArray("row", nil, "Comma-separated row values (repeatable)")
	cli.AddOutputFlags(cmd, "Minimal output (row count only)")

	return cmd
}

func runInsert(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	table, err := args.RequireString("table")
	if err != nil {
		return nil, err
	}

	lines := args.GetStringArray("row")
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one --row is required", cli.ErrUsage)
	}
	rows, err := cli.ParseRows(lines)
	if err != nil {
		return nil, err
	}

	n, err := c.App.TableService.InsertRows(ctx, tableservice.InsertRowsRequest{
		Table: table,
		Rows:  rows,
	})
	if err != nil {
		return nil, err
	}
	return cli.RowsResult{Action: "Inserted", Table: table, Rows: int64(n)}, nil
}
