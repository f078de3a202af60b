package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidUserValueLimit is returned when the user value limit is
	// negative. A limit of 0 is valid and hides every priced item from
	// the USER role.
	ErrInvalidUserValueLimit = errors.New("invalid user value limit: must be non-negative")

	// ErrInvalidAdminPriorityThreshold is returned when the admin
	// priority threshold is negative.
	ErrInvalidAdminPriorityThreshold = errors.New("invalid admin priority threshold: must be non-negative")

	// ErrInvalidConcurrency is returned when the batch concurrency is
	// not positive. Zero concurrency would mean no reports are ever
	// generated in batch mode.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrEmptyDatabaseDir is returned when no database directory is
	// configured.
	ErrEmptyDatabaseDir = errors.New("database directory must not be empty")
)
