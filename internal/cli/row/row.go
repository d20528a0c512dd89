package row

import (
	"github.com/spf13/cobra"
)

// RowCmd returns the row parent command
func RowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Insert, update and delete rows",
	}

	cmd.AddCommand(InsertCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
