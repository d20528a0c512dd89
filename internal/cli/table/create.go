package table

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	"github.com/thenoetrevino/tabula/internal/database"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// CreateCmd returns the table create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name] [columns]",
		Short: "Create a table if it does not exist",
		Long: `Create a table with the given column definitions. Running it again for an
existing table succeeds without changing anything.

Examples:
  # Human-readable output
  tabula table create products "id INTEGER, name TEXT, price REAL, qty INTEGER"

  # Flags instead of arguments
  tabula table create --name=products --columns="id INTEGER, name VARCHAR(20)"

  # JSON output for agents
  tabula table create products "id INTEGER" --json

  # Quiet mode for bash capture
  TABLE=$(tabula table create products "id INTEGER" --quiet)
`,
		Args: cobra.MaximumNArgs(2),
		RunE: handler.Command(handler.Func(runCreate)),
	}

	cmd.Flags().String("name", "", "Table name")
	cmd.Flags().String("columns", "", `Column definitions, e.g. "id INTEGER, name TEXT"`)
	cli.AddOutputFlags(cmd, "Minimal output (table name only)")

	return cmd
}

// CreateResult is the outcome of table create
type CreateResult struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
}

// GetName returns the table name for quiet mode
func (r CreateResult) GetName() string {
	return r.Table
}

func (r CreateResult) String() string {
	return fmt.Sprintf("✓ Table '%s' ready (%d columns)", r.Table, len(r.Columns))
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	name := args.ArgOrFlag(0, "name")
	definition := args.ArgOrFlag(1, "columns")
	if name == "" {
		return nil, fmt.Errorf("%w: table name is required", cli.ErrUsage)
	}
	if definition == "" {
		return nil, fmt.Errorf("%w: column definitions are required", cli.ErrUsage)
	}

	defs, err := database.ParseColumnDefs(definition)
	if err != nil {
		return nil, err
	}

	if err := c.App.TableService.CreateTable(ctx, tableservice.CreateTableRequest{
		Name:    name,
		Columns: defs,
	}); err != nil {
		return nil, err
	}

	columns := make([]string, len(defs))
	for i, d := range defs {
		columns[i] = d.Name + " " + d.Type
	}
	return CreateResult{Table: name, Columns: columns}, nil
}
