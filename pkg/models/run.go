package models

import (
	"time"
)

// OrganizeRun represents the configuration of one organize invocation
type OrganizeRun struct {
	ID          string
	SourcePath  string
	DestPath    string
	DryRun      bool
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Validate checks if the run configuration is valid
func (r *OrganizeRun) Validate() error {
	if r.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if r.DestPath == "" {
		return &ValidationError{Field: "DestPath", Message: "destination path is required"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
