package database

import "errors"

var (
	// ErrQueryFailed is returned when the store rejects or cannot run a statement.
	ErrQueryFailed = errors.New("database: query failed")

	// ErrUnsupportedValue is returned when a column holds a value that is not
	// an integer, text or NULL.
	ErrUnsupportedValue = errors.New("database: unsupported column value")
)
