package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/chart"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	"github.com/thenoetrevino/tabula/internal/cli/styles"
)

// ChartCmd returns the chart command
func ChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <sql>",
		Short: "Draw a bar chart of a query result",
		Long: `Run a query and draw its result as horizontal bars. The first column
labels the bars; every other column holding only numbers becomes a series.

Examples:
  tabula chart "SELECT name, price, qty FROM products"
  tabula chart "SELECT name, price FROM products" --width=60
  tabula chart "SELECT name, price FROM products" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Command(handler.Func(runChart)),
	}

	cmd.Flags().Int("width", 80, "Maximum chart width in columns")
	cli.AddOutputFlags(cmd, "Minimal output (number of bars only)")

	return cmd
}

// ChartResult wraps a chart for output
type ChartResult struct {
	*chart.Chart
	width int
}

// GetCount returns the number of categories for quiet mode
func (r ChartResult) GetCount() int64 {
	return int64(len(r.Categories))
}

// Present draws the chart
func (r ChartResult) Present(_ *cli.OutputFormatter) error {
	fmt.Println(chart.Render(r.Chart, r.width, styles.ChartPalette))
	return nil
}

func runChart(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	sql := strings.TrimSpace(strings.Join(args.Args, " "))
	if sql == "" {
		return nil, fmt.Errorf("%w: a SQL statement is required", cli.ErrUsage)
	}
	ch, err := c.App.TableService.Visualize(ctx, sql)
	if err != nil {
		return nil, err
	}
	return ChartResult{Chart: ch, width: args.GetInt("width", 80)}, nil
}
