package config

import "errors"

var (
	// ErrMissingTokenSignKey is returned when the merged configuration
	// contains no token signing secret. There is deliberately no fallback
	// value: a hardcoded default secret would make every issued token
	// forgeable, so startup refuses instead.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN is returned when no database DSN is configured.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)
