package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfigDefaults tests that NewConfig applies the documented defaults.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.UserValueLimit != DefaultUserValueLimit {
		t.Errorf("UserValueLimit = %v, want %v", cfg.UserValueLimit, DefaultUserValueLimit)
	}
	if cfg.AdminPriorityThreshold != DefaultAdminPriorityThreshold {
		t.Errorf("AdminPriorityThreshold = %v, want %v", cfg.AdminPriorityThreshold, DefaultAdminPriorityThreshold)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %v, want %v", cfg.Concurrency, DefaultConcurrency)
	}
	if cfg.DatabaseDir == "" {
		t.Error("DatabaseDir should have a default value")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestConfigValidate tests validation of invalid configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "negative user value limit",
			mutate:  func(c *Config) { c.UserValueLimit = -1 },
			wantErr: ErrInvalidUserValueLimit,
		},
		{
			name:    "negative admin priority threshold",
			mutate:  func(c *Config) { c.AdminPriorityThreshold = -0.5 },
			wantErr: ErrInvalidAdminPriorityThreshold,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Concurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name:    "empty database dir",
			mutate:  func(c *Config) { c.DatabaseDir = "" },
			wantErr: ErrEmptyDatabaseDir,
		},
		{
			name:    "zero user value limit is valid",
			mutate:  func(c *Config) { c.UserValueLimit = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadConfigFile tests YAML config file loading and application.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads and applies overrides", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := "user_value_limit: 250\nconcurrency: 8\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.UserValueLimit != 250 {
			t.Errorf("UserValueLimit = %v, want 250", cfg.UserValueLimit)
		}
		if cfg.Concurrency != 8 {
			t.Errorf("Concurrency = %v, want 8", cfg.Concurrency)
		}
		// Keys absent from the file keep their defaults.
		if cfg.AdminPriorityThreshold != DefaultAdminPriorityThreshold {
			t.Errorf("AdminPriorityThreshold = %v, want default %v",
				cfg.AdminPriorityThreshold, DefaultAdminPriorityThreshold)
		}
	})

	t.Run("explicit zero override is applied", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("user_value_limit: 0\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.UserValueLimit != 0 {
			t.Errorf("UserValueLimit = %v, want 0", cfg.UserValueLimit)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("user_value_limit: [broken\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the config file search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q, want %q", path, got, path)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.yaml")
		if got := FindConfigFile(missing); got != "" {
			t.Errorf("FindConfigFile(%q) = %q, want empty", missing, got)
		}
	})
}
