package repository

import "errors"

var (
	// ErrNoConnection is returned when the pool for the requested access mode was never established.
	ErrNoConnection = errors.New("database connection unavailable")
)
