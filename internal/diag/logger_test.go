package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be logged at warn level")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message should be logged at warn level")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelDebug, Output: &buf})

	logger.WithField("session", "abc123").Info("draining")

	out := buf.String()
	if !strings.Contains(out, "session=abc123") {
		t.Errorf("expected field in output, got %q", out)
	}
}

func TestLogger_WithFieldDoesNotMutate(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelDebug, Output: &buf})

	_ = logger.WithField("a", 1)
	logger.Info("plain")

	if strings.Contains(buf.String(), "a=1") {
		t.Error("WithField should not mutate the parent logger")
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelDebug, Output: &buf, Prefix: "shim"})

	logger.Warn("dropped %d of %d bytes", 3, 10)

	out := buf.String()
	if !strings.Contains(out, "dropped 3 of 10 bytes") {
		t.Errorf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "[WARN] shim:") {
		t.Errorf("expected level and prefix, got %q", out)
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must stay silent.
	NullLogger.Error("should be discarded")
	NullLogger.WithField("k", "v").Info("also discarded")
}
