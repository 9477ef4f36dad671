package models

import (
	"time"
)

// MoveSuccess records one file successfully relocated into its category
// directory. FinalName may differ from OriginalName when a collision
// forced a timestamped rename.
type MoveSuccess struct {
	// OriginalName is the file name as found in the source directory
	OriginalName string

	// Category is the label the file was classified under
	Category string

	// FinalName is the name the file ended up with in the category directory
	FinalName string
}

// MoveFailure records one file that could not be relocated. The source
// file is left untouched when a move fails.
type MoveFailure struct {
	// OriginalName is the file name as found in the source directory
	OriginalName string

	// Error describes why the move failed
	Error string

	// Timestamp is when the failure was recorded
	Timestamp time.Time
}

// PreviewEntry records the category a file would be assigned during a
// dry run. Dry runs produce preview entries instead of move outcomes.
type PreviewEntry struct {
	// Name is the file name as found in the source directory
	Name string

	// Category is the label the file would be filed under
	Category string
}

// RunStatus represents the overall result of one organize run
type RunStatus string

const (
	// StatusSuccess indicates every file was relocated (or previewed)
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some files failed while others succeeded
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates every attempted move failed
	StatusFailed RunStatus = "failed"
	// StatusEmpty indicates the source contained no regular files
	StatusEmpty RunStatus = "empty"
)

// ExitCode returns the process exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess, StatusEmpty:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
