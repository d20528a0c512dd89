package table

import (
	"errors"

	"github.com/thenoetrevino/tabula/internal/chart"
	"github.com/thenoetrevino/tabula/internal/models"
)

// Validation errors
var (
	ErrEmptyTableName = errors.New("table name cannot be empty")
	ErrEmptyQuery     = errors.New("query cannot be empty")
	ErrEmptyPath      = errors.New("file path cannot be empty")

	ErrInvalidIdentifier = models.ErrInvalidIdentifier
	ErrInvalidColumnType = models.ErrInvalidColumnType
	ErrNoColumns         = models.ErrNoColumns
	ErrNoRows            = models.ErrNoRows
	ErrArityMismatch     = models.ErrArityMismatch
	ErrUnsafeClause      = models.ErrUnsafeClause
	ErrUnsupportedFormat = models.ErrUnsupportedFormat
)

// Business logic errors
var (
	ErrTableNotFound       = models.ErrTableNotFound
	ErrIncompatibleColumns = errors.New("file columns do not match the table")
	ErrNoNumericColumns    = chart.ErrNoNumericColumns
)
