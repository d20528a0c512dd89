package row

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// DeleteCmd returns the row delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete rows matching a condition",
		Long: `Delete the rows matched by --where. Use --where="1=1" to empty the table.

Examples:
  tabula row delete --table=products --where="id = ?" --arg=1
  tabula row delete --table=products --where="qty = 0" --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runDelete)),
	}

	cmd.Flags().String("table", "", "Table name (required)")
	cmd.Flags().String("where", "", "WHERE condition (required)")
	cmd.Flags().StringArray("arg", nil, "Value bound to a ? in --where (repeatable)")
	cli.AddOutputFlags(cmd, "Minimal output (row count only)")

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	table, err := args.RequireString("table")
	if err != nil {
		return nil, err
	}
	where, err := args.RequireString("where")
	if err != nil {
		return nil, err
	}

	n, err := c.App.TableService.DeleteRows(ctx, tableservice.DeleteRowsRequest{
		Table:     table,
		Where:     where,
		WhereArgs: cli.ParseArgs(args.GetStringArray("arg")),
	})
	if err != nil {
		return nil, err
	}
	return cli.RowsResult{Action: "Deleted", Table: table, Rows: n}, nil
}
