package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerMasksSensitiveKeys tests that secret-bearing
// attribute keys are masked.
func TestSecureHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
		mask  bool
	}{
		{name: "password key", key: "password", value: "hunter2", mask: true},
		{name: "dsn key", key: "dsn", value: "file:db?secret=1", mask: true},
		{name: "key containing token", key: "session_token", value: "abc", mask: true},
		{name: "mixed case key", key: "Password", value: "hunter2", mask: true},
		{name: "plain key", key: "user_id", value: "42", mask: false},
		{name: "format key", key: "format", value: "CSV", mask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test message", tt.key, tt.value)

			output := buf.String()
			if tt.mask {
				if strings.Contains(output, tt.value) {
					t.Errorf("sensitive value %q leaked into log output: %s", tt.value, output)
				}
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected mask value in output: %s", output)
				}
			} else {
				if !strings.Contains(output, tt.value) {
					t.Errorf("expected plain value %q in output: %s", tt.value, output)
				}
			}
		})
	}
}

// TestSecureHandlerMasksGroups tests recursive masking inside groups.
func TestSecureHandlerMasksGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("test message", slog.Group("store",
		slog.String("path", "/data/itemreport.db"),
		slog.String("password", "hunter2"),
	))

	output := buf.String()
	if strings.Contains(output, "hunter2") {
		t.Errorf("sensitive group value leaked: %s", output)
	}
	if !strings.Contains(output, "/data/itemreport.db") {
		t.Errorf("plain group value missing: %s", output)
	}
}

// TestSecureHandlerWithAttrs tests masking of pre-attached attributes.
func TestSecureHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.With("token", "abc123").Info("test message")

	output := buf.String()
	if strings.Contains(output, "abc123") {
		t.Errorf("sensitive value from With leaked: %s", output)
	}
}

// TestNewSecureLogger tests the verbose flag's level mapping.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose logs debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Error("verbose logger should emit debug records")
		}
	})

	t.Run("quiet suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("quiet logger should suppress info records, got %s", buf.String())
		}
	})
}
