package row

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// UpdateCmd returns the row update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update rows matching a condition",
		Long: `Update the rows matched by --where. Values in --set and --arg are always
bound as parameters; --where may reference --arg values through ? placeholders.
Use --where="1=1" to update every row.

Examples:
  tabula row update --table=products --set=price=120 --where="id = ?" --arg=1

  # Several columns
  tabula row update --table=products --set=price=0 --set=qty= --where="qty < ?" --arg=5
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runUpdate)),
	}

	cmd.Flags().String("table", "", "Table name (required)")
	cmd.Flags().StringArray("set", nil, "column=value assignment (repeatable, empty value sets NULL)")
	cmd.Flags().String("where", "", "WHERE condition (required)")
	cmd.Flags().StringArray("arg", nil, "Value bound to a ? in --where (repeatable)")
	cli.AddOutputFlags(cmd, "Minimal output (row count only)")

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	table, err := args.RequireString("table")
	if err != nil {
		return nil, err
	}
	where, err := args.RequireString("where")
	if err != nil {
		return nil, err
	}
	set, err := cli.ParseAssignments(args.GetStringArray("set"))
	if err != nil {
		return nil, err
	}

	n, err := c.App.TableService.UpdateRows(ctx, tableservice.UpdateRowsRequest{
		Table:     table,
		Set:       set,
		Where:     where,
		WhereArgs: cli.ParseArgs(args.GetStringArray("arg")),
	})
	if err != nil {
		return nil, err
	}
	return cli.RowsResult{Action: "Updated", Table: table, Rows: n}, nil
}
