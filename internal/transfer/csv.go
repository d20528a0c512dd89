package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/tabula/internal/models"
)

// CSVCodec reads and writes comma separated text with a header line.
// NULL is written as an empty field and every empty field reads back as NULL,
// so an empty TEXT value does not survive a round trip.
type CSVCodec struct{}

func (CSVCodec) Write(w io.Writer, rs *models.ResultSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rs.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(rs.Strings()); err != nil {
		return err
	}
	return cw.Error()
}

func (CSVCodec) Read(r io.Reader) (*models.ResultSet, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	rs := &models.ResultSet{Columns: header, Rows: make([]models.Row, 0, len(records))}
	for _, rec := range records {
		row := make(models.Row, len(rec))
		for i, field := range rec {
			row[i] = fieldValue(field)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

// ParseRecord splits a single comma-separated line typed by a user into
// fields, with the same quoting rules as a CSV file.
func ParseRecord(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	return record, nil
}

// RowFromRecord converts text fields into a row; empty fields become NULL
func RowFromRecord(record []string) models.Row {
	row := make(models.Row, len(record))
	for i, field := range record {
		row[i] = fieldValue(field)
	}
	return row
}
