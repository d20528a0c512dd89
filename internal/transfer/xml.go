package transfer

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/thenoetrevino/tabula/internal/models"
)

const (
	DefaultXMLRoot = "data"
	DefaultXMLItem = "item"
)

var xmlNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// XMLCodec writes <Root><Item><column>value</column>...</Item>...</Root>.
// Values carry no type information; everything round-trips as text.
type XMLCodec struct {
	Root string
	Item string
}

func (c XMLCodec) Write(w io.Writer, rs *models.ResultSet) error {
	for _, col := range rs.Columns {
		if !xmlNamePattern.MatchString(col) {
			return fmt.Errorf("column %q is not a valid XML element name", col)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: c.Root}}
	item := xml.StartElement{Name: xml.Name{Local: c.Item}}

	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, row := range rs.Rows {
		if err := enc.EncodeToken(item); err != nil {
			return err
		}
		for i, col := range rs.Columns {
			field := xml.StartElement{Name: xml.Name{Local: col}}
			if err := enc.EncodeElement(models.FormatValue(row[i]), field); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(item.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Read flattens each item's child element text, in document order, into a row.
// Column names are taken from the first item. Elements other than Item under
// the root are ignored.
func (c XMLCodec) Read(r io.Reader) (*models.ResultSet, error) {
	dec := xml.NewDecoder(r)
	rs := &models.ResultSet{Rows: []models.Row{}}

	var (
		depth     int
		row       models.Row
		text      strings.Builder
		sawRoot   bool
		firstItem = true
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				sawRoot = true
			case 2:
				if t.Name.Local != c.Item {
					if err := dec.Skip(); err != nil {
						return nil, err
					}
					depth--
					continue
				}
				row = models.Row{}
			case 3:
				text.Reset()
				if firstItem {
					rs.Columns = append(rs.Columns, t.Name.Local)
				}
			}
		case xml.CharData:
			if depth >= 3 {
				text.Write(t)
			}
		case xml.EndElement:
			switch depth {
			case 3:
				row = append(row, fieldValue(text.String()))
			case 2:
				if firstItem {
					firstItem = false
				}
				rs.Rows = append(rs.Rows, row)
			}
			depth--
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("no root element")
	}
	return rs, nil
}
