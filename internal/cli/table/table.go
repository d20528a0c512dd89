package table

import (
	"github.com/spf13/cobra"
)

// TableCmd returns the table parent command
func TableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Manage tables",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DescribeCmd())

	return cmd
}
