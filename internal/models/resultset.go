package models

import (
	"strconv"
	"time"
)

// Row is an ordered tuple of scalar values.
// Values are nil, int64, float64, string, bool or time.Time.
type Row []any

// ResultSet is the in-memory tabular representation shared by queries,
// exports and imports. It is fully materialised; there is no cursor.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows in the result set
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Strings returns every row rendered with FormatValue
func (r *ResultSet) Strings() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatValue(v)
		}
		out[i] = cells
	}
	return out
}

// FormatValue renders a scalar the way it is written to text formats.
// NULL renders as the empty string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return FormatTime(val)
	default:
		return ""
	}
}

// TimeLayout is SQLite's text form for DATETIME values
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders t in TimeLayout, adding fractional seconds only when set
func FormatTime(t time.Time) string {
	if t.Nanosecond() != 0 {
		return t.Format(TimeLayout + ".999999999")
	}
	return t.Format(TimeLayout)
}
