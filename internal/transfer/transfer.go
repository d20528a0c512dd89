// Package transfer converts result sets to and from the CSV, XML and XLSX
// file formats used by import and export.
package transfer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/tabula/internal/models"
)

// Codec reads and writes one file format
type Codec interface {
	Write(w io.Writer, rs *models.ResultSet) error
	Read(r io.Reader) (*models.ResultSet, error)
}

// For returns the codec for a format
func For(format models.Format) (Codec, error) {
	switch format {
	case models.FormatCSV:
		return CSVCodec{}, nil
	case models.FormatXML:
		return XMLCodec{Root: DefaultXMLRoot, Item: DefaultXMLItem}, nil
	case models.FormatXLSX:
		return XLSXCodec{Sheet: DefaultSheet}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, format)
	}
}

// WriteFile serialises rs to path, replacing any existing file
func WriteFile(path string, format models.Format, rs *models.ResultSet) (err error) {
	codec, err := For(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := codec.Write(f, rs); err != nil {
		return fmt.Errorf("failed to write %s as %s: %w", path, format, err)
	}
	return nil
}

// ReadFile parses path into a result set
func ReadFile(path string, format models.Format) (*models.ResultSet, error) {
	codec, err := For(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close import file", "path", path, "error", err)
		}
	}()

	rs, err := codec.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s as %s: %w", path, format, err)
	}
	return rs, nil
}

// fieldValue maps an imported text field onto a row value. Empty means NULL
// for every codec, so "" and NULL are indistinguishable after an import.
func fieldValue(s string) any {
	if s == "" {
		return nil
	}
	return s
}
