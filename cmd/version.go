package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/thenoetrevino/tabula/cmd.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// VersionCmd prints build information
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tabula %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
