package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The two business thresholds come from the report business rules and
// must not be hardcoded anywhere else in the codebase.
const (
	// DefaultUserValueLimit is the value ceiling for the USER role.
	// Items above this value are hidden from non-admin reports.
	DefaultUserValueLimit = 500

	// DefaultAdminPriorityThreshold is the value above which an item is
	// flagged as priority on the ADMIN path. Note the comparison is
	// strictly greater than: an item at exactly this value is not
	// priority.
	DefaultAdminPriorityThreshold = 1000

	// DefaultConcurrency is the number of concurrent report generations
	// in batch mode. The pipeline is pure, so this is bounded by CPU
	// and database read throughput rather than safety.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "itemreport"
)

// Config holds all configuration options for report generation.
// This struct is populated from defaults, an optional config file, and
// CLI flags, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested
// structs. The number of options is small, and nesting would add
// complexity without benefit.
type Config struct {
	// UserValueLimit is the value ceiling applied to the USER role.
	UserValueLimit float64

	// AdminPriorityThreshold is the priority cutoff for the ADMIN role.
	AdminPriorityThreshold float64

	// DatabaseDir is the directory containing the SQLite item store.
	DatabaseDir string

	// Concurrency is the maximum number of concurrent report
	// generations in batch mode.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		UserValueLimit:         DefaultUserValueLimit,
		AdminPriorityThreshold: DefaultAdminPriorityThreshold,
		DatabaseDir:            DefaultDatabaseDir(),
		Concurrency:            DefaultConcurrency,
	}
}

// DefaultDatabaseDir returns the default database directory under the
// XDG data home (typically ~/.local/share/itemreport on Linux).
func DefaultDatabaseDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks the configuration for invalid values.
// It returns one of the package sentinel errors on the first problem
// found, or nil if the configuration is usable.
func (c *Config) Validate() error {
	if c.UserValueLimit < 0 {
		return ErrInvalidUserValueLimit
	}
	if c.AdminPriorityThreshold < 0 {
		return ErrInvalidAdminPriorityThreshold
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.DatabaseDir == "" {
		return ErrEmptyDatabaseDir
	}
	return nil
}
