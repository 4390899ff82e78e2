package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixgeelhaar/respec/internal/errors"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("planning started", "specs", 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON log entry: %v", err)
	}

	if entry["msg"] != "planning started" {
		t.Errorf("expected msg 'planning started', got %v", entry["msg"])
	}

	if entry["specs"] != float64(7) {
		t.Errorf("expected specs=7, got %v", entry["specs"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("cycle detected")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("expected debug/info to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "cycle detected") {
		t.Errorf("expected warn to be logged, got: %s", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	err := errors.NewCyclicDependencyError("A -> B -> A")
	logger.WithError(err).Warn("repairing dependency graph")

	out := buf.String()
	if !strings.Contains(out, string(errors.ErrCodeCyclicDependency)) {
		t.Errorf("expected error code in log output, got: %s", out)
	}
}

func TestWithErrorNil(t *testing.T) {
	logger := Default()
	if logger.WithError(nil) != logger {
		t.Errorf("expected WithError(nil) to return the same logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("console") != FormatText {
		t.Errorf("expected 'console' to parse as text format")
	}
	if ParseFormat("anything-else") != FormatJSON {
		t.Errorf("expected unknown format to default to JSON")
	}
}

func TestDefaultLogger(t *testing.T) {
	SetDefaultLogger(nil)
	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("expected lazily initialized default logger")
	}
	if DefaultLogger() != logger {
		t.Errorf("expected default logger to be cached")
	}
}
