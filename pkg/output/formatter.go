package output

import (
	"github.com/sdevries/fileshelf/pkg/models"
)

// Event types reported through ProgressUpdate
const (
	// EventMoved is emitted after a file was relocated
	EventMoved = "moved"
	// EventError is emitted when a move failed
	EventError = "error"
	// EventPreview is emitted for each file during a dry run
	EventPreview = "preview"
)

// ProgressUpdate represents a per-file notification during a run
type ProgressUpdate struct {
	Type        string
	FileName    string
	FinalName   string
	Category    string
	CurrentFile int
	Error       error
}

// Formatter defines the interface for presenting run output.
// Implementations include human-readable, JSON and progress-bar
// formatters; each formats the structured summary independently.
type Formatter interface {
	// Start initializes the formatter for a new run
	Start(totalFiles int, dryRun bool) error

	// Progress reports a per-file outcome during the run
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the run summary
	Complete(summary *models.RunSummary) error

	// Error reports a fatal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// NullFormatter discards all output. Used when a caller wants the
// summary only.
type NullFormatter struct{}

// NewNullFormatter creates a formatter that produces no output
func NewNullFormatter() *NullFormatter {
	return &NullFormatter{}
}

// Start does nothing
func (f *NullFormatter) Start(totalFiles int, dryRun bool) error { return nil }

// Progress does nothing
func (f *NullFormatter) Progress(update ProgressUpdate) error { return nil }

// Complete does nothing
func (f *NullFormatter) Complete(summary *models.RunSummary) error { return nil }

// Error does nothing
func (f *NullFormatter) Error(err error) error { return nil }

// Name returns the formatter name
func (f *NullFormatter) Name() string { return "null" }
