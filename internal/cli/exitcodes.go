package cli

import (
	"errors"

	tableservice "github.com/thenoetrevino/tabula/internal/services/table"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, file errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Table not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Row arity mismatches, file columns that do not match the table,
	// or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid identifiers, invalid column types, unsafe clauses,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeFor maps an error returned by a command onto an exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, tableservice.ErrTableNotFound):
		return ExitNotFound
	case errors.Is(err, tableservice.ErrArityMismatch),
		errors.Is(err, tableservice.ErrIncompatibleColumns),
		errors.Is(err, tableservice.ErrNoNumericColumns):
		return ExitDataErr
	case errors.Is(err, tableservice.ErrInvalidIdentifier),
		errors.Is(err, tableservice.ErrInvalidColumnType),
		errors.Is(err, tableservice.ErrNoColumns),
		errors.Is(err, tableservice.ErrNoRows),
		errors.Is(err, tableservice.ErrUnsafeClause),
		errors.Is(err, tableservice.ErrUnsupportedFormat),
		errors.Is(err, tableservice.ErrEmptyTableName),
		errors.Is(err, tableservice.ErrEmptyQuery),
		errors.Is(err, tableservice.ErrEmptyPath):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "TABLE_NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// reportedError marks an error that was already shown to the user
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Reported marks err as already printed so the entry point does not
// print it again. The exit code is still derived from err.
func Reported(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	return reportedError{err}
}

// IsReported reports whether err was marked by Reported
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
