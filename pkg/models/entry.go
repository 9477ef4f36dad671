package models

import (
	"path/filepath"
	"strings"
	"time"
)

// FileEntry represents a regular file found directly inside the source
// directory. Enumeration is non-recursive, so ParentDir is always the
// source directory itself.
type FileEntry struct {
	// Name is the file name including its extension
	Name string

	// AbsolutePath is the full path on the filesystem
	AbsolutePath string

	// ParentDir is the directory containing the file
	ParentDir string

	// Size in bytes
	Size int64

	// ModTime is the last modification time
	ModTime time.Time
}

// Ext returns the file extension lowercased, including the leading dot.
// Files without an extension return an empty string.
func (e *FileEntry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Name))
}

// Stem returns the file name without its extension.
func (e *FileEntry) Stem() string {
	return strings.TrimSuffix(e.Name, filepath.Ext(e.Name))
}
