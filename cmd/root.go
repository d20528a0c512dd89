package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/query"
	"github.com/thenoetrevino/tabula/internal/cli/row"
	"github.com/thenoetrevino/tabula/internal/cli/styles"
	"github.com/thenoetrevino/tabula/internal/cli/table"
	"github.com/thenoetrevino/tabula/internal/cli/transfer"
	"github.com/thenoetrevino/tabula/internal/config"
	"github.com/thenoetrevino/tabula/internal/launcher"
	"github.com/thenoetrevino/tabula/internal/logging"
)

// rootState carries what PersistentPreRunE loads to the commands
type rootState struct {
	dbPath    string
	cfg       *config.Config
	logCloser io.Closer
}

// NewRootCmd builds the tabula command tree
func NewRootCmd() *cobra.Command {
	st := &rootState{}

	rootCmd := &cobra.Command{
		Use:   "tabula",
		Short: "Tabula - SQLite tables from the terminal",
		Long: `Tabula creates tables in a local SQLite file, inserts, updates, deletes and
queries rows, imports and exports CSV, XML and XLSX files and charts query
results. Run without arguments for the terminal UI.`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  st.setup,
		PersistentPostRunE: st.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.Launch(cmd.Context(), st.cfg, cli.DatabasePathFromContext(cmd.Context())); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return cli.Reported(err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.dbPath, "db", "",
		"SQLite database file (default: $TABULA_DB or database.path from the config file)")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(
		table.TableCmd(),
		row.RowCmd(),
		query.QueryCmd(),
		query.ChartCmd(),
		transfer.ExportCmd(),
		transfer.ImportCmd(),
		VersionCmd(),
	)

	return rootCmd
}

// setup loads the config, starts logging and resolves the database path.
// --db wins over TABULA_DB, which wins over the config file.
func (st *rootState) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	st.cfg = cfg
	styles.Init(cfg.ColorScheme)

	if _, closer, err := logging.Init(cfg.Logging); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	} else {
		st.logCloser = closer
	}

	path := cfg.Database.Path
	if st.dbPath != "" {
		path = st.dbPath
	}
	slog.Debug("resolved database path", "path", path, "command", cmd.CommandPath())

	cmd.SetContext(cli.WithDatabasePath(cmd.Context(), path))
	return nil
}

func (st *rootState) teardown(cmd *cobra.Command, args []string) error {
	if st.logCloser != nil {
		return st.logCloser.Close()
	}
	return nil
}

// Execute runs the command tree. Errors not already shown by a command
// are printed here; the caller maps the returned error to an exit code.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
