package models

import "errors"

// Storage-level errors shared by the database and service layers
var (
	// ErrInvalidIdentifier indicates a table or column name that is not a plain SQL identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidColumnType indicates a declared column type outside the accepted grammar
	ErrInvalidColumnType = errors.New("invalid column type")

	// ErrNoColumns indicates a table definition without any column
	ErrNoColumns = errors.New("at least one column is required")

	// ErrNoRows indicates an insert call without rows
	ErrNoRows = errors.New("no rows to insert")

	// ErrArityMismatch indicates rows of differing width or a width that does not match the table
	ErrArityMismatch = errors.New("row arity mismatch")

	// ErrUnsafeClause indicates a SET/WHERE fragment that is empty or holds more than one statement
	ErrUnsafeClause = errors.New("unsafe clause")

	// ErrTableNotFound indicates the named table does not exist
	ErrTableNotFound = errors.New("table not found")

	// ErrUnsupportedFormat indicates an import/export format other than csv, xml or xlsx
	ErrUnsupportedFormat = errors.New("unsupported format")
)
