package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCommand tests configuration file creation.
func TestInitCommand(t *testing.T) {
	t.Parallel()

	t.Run("creates configuration file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".itemreport")
		out, err := runCommand(t, "init", "-o", path)
		if err != nil {
			t.Fatalf("init failed: %v\n%s", err, out)
		}

		content, err := os.ReadFile(path) //nolint:gosec // test-owned path
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		if !strings.Contains(string(content), "user_value_limit") {
			t.Error("template should document user_value_limit")
		}
		if !strings.Contains(string(content), "admin_priority_threshold") {
			t.Error("template should document admin_priority_threshold")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".itemreport")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := runCommand(t, "init", "-o", path); err == nil {
			t.Error("expected error for existing file")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".itemreport")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if out, err := runCommand(t, "init", "-o", path, "-f"); err != nil {
			t.Fatalf("init -f failed: %v\n%s", err, out)
		}

		content, err := os.ReadFile(path) //nolint:gosec // test-owned path
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		if string(content) == "existing" {
			t.Error("file should have been overwritten")
		}
	})
}
