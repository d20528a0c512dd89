package transfer

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/cli/handler"
	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a table to a CSV, XML or XLSX file",
		Long: `Write every row of a table to a file. The format comes from --format or,
when omitted, from the file extension.

Examples:
  tabula export --table=products --file=products.csv
  tabula export --table=products --file=out.dat --format=xml
  tabula export --table=products --file=products.xlsx --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runExport)),
	}

	addTransferFlags(cmd)
	return cmd
}

// ExportResult reports an export
type ExportResult struct {
	cli.RowsResult
	Size string `json:"size,omitempty"`
}

func (r ExportResult) String() string {
	msg := r.RowsResult.String()
	if r.Size != "" {
		msg += ", " + r.Size
	}
	return msg
}

func runExport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	req, err := transferRequest(args)
	if err != nil {
		return nil, err
	}

	n, err := c.App.TableService.Export(ctx, req)
	if err != nil {
		return nil, err
	}

	result := ExportResult{RowsResult: cli.RowsResult{
		Action: "Exported",
		Table:  req.Table,
		Rows:   int64(n),
		Path:   req.Path,
		Format: string(req.Format),
	}}
	if info, err := os.Stat(req.Path); err == nil {
		result.Size = humanize.Bytes(uint64(info.Size()))
	}
	return result, nil
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().String("table", "", "Table name (required)")
	cmd.Flags().String("file", "", "File path (required)")
	cmd.Flags().String("format", "", "csv, xml or xlsx (default: from the file extension)")
	cli.AddOutputFlags(cmd, "Minimal output (row count only)")
}

func transferRequest(args *handler.Arguments) (tableservice.TransferRequest, error) {
	table, err := args.RequireString("table")
	if err != nil {
		return tableservice.TransferRequest{}, err
	}
	path, err := args.RequireString("file")
	if err != nil {
		return tableservice.TransferRequest{}, err
	}
	format, err := cli.ParseFormatFlag(args.GetString("format", ""), path)
	if err != nil {
		return tableservice.TransferRequest{}, err
	}
	return tableservice.TransferRequest{Table: table, Path: path, Format: format}, nil
}
