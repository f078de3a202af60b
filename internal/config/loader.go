package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".itemreport"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML representation of overridable settings.
// Pointer fields distinguish "not set" from an explicit zero, so a
// config file can set user_value_limit to 0 without being mistaken for
// an absent key.
type File struct {
	// UserValueLimit overrides the USER role value ceiling.
	UserValueLimit *float64 `yaml:"user_value_limit"`

	// AdminPriorityThreshold overrides the ADMIN priority cutoff.
	AdminPriorityThreshold *float64 `yaml:"admin_priority_threshold"`

	// DatabaseDir overrides the SQLite store directory.
	DatabaseDir *string `yaml:"database_dir"`

	// Concurrency overrides the batch generation concurrency.
	Concurrency *int `yaml:"concurrency"`
}

// Apply copies the file's set fields onto cfg, leaving unset fields at
// their current values.
func (f *File) Apply(cfg *Config) {
	if f.UserValueLimit != nil {
		cfg.UserValueLimit = *f.UserValueLimit
	}
	if f.AdminPriorityThreshold != nil {
		cfg.AdminPriorityThreshold = *f.AdminPriorityThreshold
	}
	if f.DatabaseDir != nil {
		cfg.DatabaseDir = *f.DatabaseDir
	}
	if f.Concurrency != nil {
		cfg.Concurrency = *f.Concurrency
	}
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether the
// config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .itemreport in the current directory
//  3. Look for .itemreport in the user's home directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
