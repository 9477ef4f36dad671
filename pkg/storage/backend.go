package storage

import (
	"context"
	"time"
)

// FileInfo represents metadata about a directory entry
type FileInfo struct {
	Path        string
	Name        string
	Size        int64
	ModTime     time.Time
	IsDir       bool
	IsRegular   bool
	Permissions uint32
}

// Backend defines the interface for filesystem operations used by the
// organizer. The local filesystem is the only implementation today;
// the interface exists so tests can inject per-file failures.
type Backend interface {
	// Root returns the absolute path the backend was opened at
	Root() string

	// List returns the direct children of the root directory. The
	// listing is a snapshot: entries are read once, in directory
	// order, before any moves begin. No recursion.
	List(ctx context.Context) ([]FileInfo, error)

	// Stat returns metadata for an absolute path
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if an absolute path exists
	Exists(ctx context.Context, path string) (bool, error)

	// MkdirAll creates a directory and all necessary parents.
	// Idempotent: no error if the directory already exists.
	MkdirAll(ctx context.Context, path string) error

	// Move relocates a file from src to dst (absolute paths). It
	// refuses to overwrite an existing destination. On failure the
	// source file is left intact.
	Move(ctx context.Context, src, dst string) error

	// Close releases any resources held by the backend
	Close() error
}
