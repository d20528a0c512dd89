package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append rows from a CSV, XML or XLSX file to a table",
		Long: `Append every row of a file to an existing table in one transaction.
CSV and XLSX files must start with a header naming table columns; XML items are
inserted in table column order. Empty values import as NULL.

Examples:
  tabula import --table=products --file=products.csv
  tabula import --table=products --file=products.xml --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runImport)),
	}

	addTransferFlags(cmd)
	return cmd
}

func runImport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	req, err := transferRequest(args)
	if err != nil {
		return nil, err
	}

	n, err := c.App.TableService.Import(ctx, req)
	if err != nil {
		return nil, err
	}

	return cli.RowsResult{
		Action: "Imported",
		Table:  req.Table,
		Rows:   int64(n),
		Path:   req.Path,
		Format: string(req.Format),
	}, nil
}
