// Package chart turns a query result into a category/value bar chart and
// renders it as styled terminal text.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tabula/internal/models"
)

// ErrNoNumericColumns is returned when no column after the first holds numbers
var ErrNoNumericColumns = errors.New("no numeric columns to chart")

// ErrTooFewColumns is returned when the result has fewer than two columns
var ErrTooFewColumns = errors.New("chart needs a category column and at least one value column")

// Series is one value column of the chart
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is a bar chart: one group of bars per category, one bar per series
type Chart struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

// FromResultSet uses the first column as categories and every remaining
// column whose non-NULL values are all numeric as a series. NULL plots as 0.
func FromResultSet(title string, rs *models.ResultSet) (*Chart, error) {
	if rs == nil || len(rs.Columns) < 2 {
		return nil, ErrTooFewColumns
	}

	c := &Chart{Title: title, Categories: make([]string, len(rs.Rows))}
	for i, row := range rs.Rows {
		c.Categories[i] = models.FormatValue(row[0])
	}

	for j := 1; j < len(rs.Columns); j++ {
		values := make([]float64, len(rs.Rows))
		numeric := true
		for i, row := range rs.Rows {
			v, ok := toFloat(row[j])
			if !ok {
				numeric = false
				break
			}
			values[i] = v
		}
		if numeric {
			c.Series = append(c.Series, Series{Name: rs.Columns[j], Values: values})
		}
	}

	if len(c.Series) == 0 {
		return nil, ErrNoNumericColumns
	}
	return c, nil
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	case float64:
		return val, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Max returns the largest absolute value across all series
func (c *Chart) Max() float64 {
	var m float64
	for _, s := range c.Series {
		for _, v := range s.Values {
			m = math.Max(m, math.Abs(v))
		}
	}
	return m
}

// DefaultPalette is used when Render is given no colours
var DefaultPalette = []string{"#7D56F4", "#04B575", "#F25D94", "#3C9EE7", "#EDB12B", "#E06C75"}

// Render draws horizontal bars no wider than width columns
func Render(c *Chart, width int, palette []string) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	labelWidth := 0
	for _, cat := range c.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(cat))
	}
	labelWidth = min(labelWidth, 24)

	valueWidth := 0
	for _, s := range c.Series {
		for _, v := range s.Values {
			valueWidth = max(valueWidth, len(formatNumber(v)))
		}
	}

	barSpace := max(width-labelWidth-valueWidth-3, 1)
	top := c.Max()

	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Width(labelWidth).MaxWidth(labelWidth)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(titleStyle.Render(c.Title))
		b.WriteString("\n\n")
	}

	for i, cat := range c.Categories {
		for si, s := range c.Series {
			label := ""
			if si == 0 {
				label = cat
			}
			n := 0
			if top > 0 {
				n = int(math.Round(math.Abs(s.Values[i]) / top * float64(barSpace)))
			}
			bar := lipgloss.NewStyle().
				Foreground(lipgloss.Color(palette[si%len(palette)])).
				Render(strings.Repeat("█", n))
			fmt.Fprintf(&b, "%s │%s %s\n", labelStyle.Render(label), bar, formatNumber(s.Values[i]))
		}
	}

	legend := make([]string, len(c.Series))
	for si, s := range c.Series {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(palette[si%len(palette)])).Render("■")
		legend[si] = swatch + " " + s.Name
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(legend, "  "))

	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
