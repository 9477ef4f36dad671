package logging

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoggerJSON(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   path,
		Format: FormatJSON,
		Level:  InfoLevel,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info(ctx, "file moved", Fields{"file": "a.txt", "category": "Documents"})
	logger.Debug(ctx, "should be filtered", nil)
	logger.Error(ctx, "move failed", errors.New("permission denied"), Fields{"file": "b.txt"})

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2 (debug filtered)", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first["message"] != "file moved" {
		t.Errorf("message = %v, want 'file moved'", first["message"])
	}
	if first["category"] != "Documents" {
		t.Errorf("category = %v, want Documents", first["category"])
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not valid JSON: %v", err)
	}
	if second["level"] != "error" {
		t.Errorf("level = %v, want error", second["level"])
	}
	if second["error"] != "permission denied" {
		t.Errorf("error = %v, want 'permission denied'", second["error"])
	}
}

func TestFileLoggerText(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   path,
		Format: FormatText,
		Level:  DebugLevel,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Warn(ctx, "duplicate extension", Fields{"ext": ".json"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "[WARN]") {
		t.Errorf("line missing level marker: %s", line)
	}
	if !strings.Contains(line, "duplicate extension") {
		t.Errorf("line missing message: %s", line)
	}
	if !strings.Contains(line, "ext=.json") {
		t.Errorf("line missing field: %s", line)
	}
}

func TestFileLoggerWithFields(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   path,
		Format: FormatJSON,
		Level:  InfoLevel,
	})
	if err != nil {
		t.Fatal(err)
	}

	child := logger.WithFields(Fields{"run_id": "abc"})
	child.Info(ctx, "started", nil)
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", entry["run_id"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
