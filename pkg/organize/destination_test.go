package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdevries/fileshelf/pkg/models"
)

func TestCollisionName(t *testing.T) {
	at := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		expected string
	}{
		{"report.pdf", "report_20240131_235959.pdf"},
		{"archive.tar.gz", "archive.tar_20240131_235959.gz"},
		{"noext", "noext_20240131_235959"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &models.FileEntry{Name: tt.name}
			if got := collisionName(entry, at); got != tt.expected {
				t.Errorf("collisionName(%q) = %s, want %s", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCollisionRename(t *testing.T) {
	ctx := context.Background()
	source := t.TempDir()

	// Destination category already holds a file with the same name
	docsDir := filepath.Join(source, "Documents")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, "x.txt"), []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, source, "x.txt")

	run := newTestRun(source, source, false)
	organizer := newTestOrganizer(t, run)
	organizer.now = func() time.Time {
		return time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	}

	summary, err := organizer.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(summary.Successes) != 1 {
		t.Fatalf("Successes = %d, want 1: %+v", len(summary.Successes), summary.Failures)
	}
	success := summary.Successes[0]
	if success.FinalName != "x_20240131_235959.txt" {
		t.Errorf("FinalName = %s, want x_20240131_235959.txt", success.FinalName)
	}

	// Both files exist with distinct names, original content unmodified
	data, err := os.ReadFile(filepath.Join(docsDir, "x.txt"))
	if err != nil {
		t.Fatalf("original should still exist: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("original content = %q, want %q", data, "original")
	}
	data, err = os.ReadFile(filepath.Join(docsDir, "x_20240131_235959.txt"))
	if err != nil {
		t.Fatalf("renamed file should exist: %v", err)
	}
	if string(data) != "content of x.txt" {
		t.Errorf("renamed content = %q, want moved file content", data)
	}
}

func TestCollisionSameSecondFails(t *testing.T) {
	ctx := context.Background()
	source := t.TempDir()

	// Plain name and the timestamped variant are both taken; the move
	// must fail and be recorded, with the source file left alone.
	docsDir := filepath.Join(source, "Documents")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, "x.txt"), []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, "x_20240131_235959.txt"), []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, source, "x.txt")

	run := newTestRun(source, source, false)
	organizer := newTestOrganizer(t, run)
	organizer.now = func() time.Time {
		return time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	}

	summary, err := organizer.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(summary.Failures) != 1 {
		t.Fatalf("Failures = %d, want 1", len(summary.Failures))
	}
	if len(summary.Successes) != 0 {
		t.Errorf("Successes = %d, want 0", len(summary.Successes))
	}

	// Source file intact after the failed move
	data, err := os.ReadFile(filepath.Join(source, "x.txt"))
	if err != nil {
		t.Fatalf("source file should remain: %v", err)
	}
	if string(data) != "content of x.txt" {
		t.Errorf("source content = %q, want unchanged", data)
	}
}
