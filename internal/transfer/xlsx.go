package transfer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/tabula/internal/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet written on export
const DefaultSheet = "Sheet1"

// XLSXCodec writes a single worksheet: header row then data rows, unstyled.
// On read the first sheet is used and its first row is the header.
type XLSXCodec struct {
	Sheet string
}

func (c XLSXCodec) Write(w io.Writer, rs *models.ResultSet) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheet := c.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return err
		}
	}

	header := make([]any, len(rs.Columns))
	for i, col := range rs.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rs.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}

// cellValue keeps numbers and text typed. Other values, times included, are
// written as text in the same form the CSV codec uses.
func cellValue(v any) any {
	switch v.(type) {
	case nil, int64, float64, string:
		return v
	default:
		return models.FormatValue(v)
	}
}

func (c XLSXCodec) Read(r io.Reader) (*models.ResultSet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	header := rows[0]
	rs := &models.ResultSet{Columns: header, Rows: make([]models.Row, 0, len(rows)-1)}
	for _, cells := range rows[1:] {
		// trailing empty cells are trimmed by GetRows
		row := make(models.Row, len(header))
		for i := range header {
			if i < len(cells) {
				row[i] = fieldValue(cells[i])
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
