package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdevries/fileshelf/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting.
// Per-file events are accumulated and emitted as part of a single
// document when the run completes, keeping the output parseable.
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single per-file event
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	File      string    `json:"file"`
	Category  string    `json:"category,omitempty"`
	FinalName string    `json:"final_name,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// JSONReport is the complete run report document
type JSONReport struct {
	RunID      string              `json:"run_id"`
	Source     string              `json:"source"`
	Destination string             `json:"destination"`
	DryRun     bool                `json:"dry_run"`
	Status     string              `json:"status"`
	Duration   string              `json:"duration"`
	DurationMs int64               `json:"duration_ms"`
	Scanned    int                 `json:"files_scanned"`
	Moved      int                 `json:"files_moved"`
	Failed     int                 `json:"files_failed"`
	Categories []JSONCategoryCount `json:"categories,omitempty"`
	Events     []JSONEvent         `json:"events,omitempty"`
}

// JSONCategoryCount is one per-category tally
type JSONCategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// NewJSONFormatter creates a new JSON formatter writing to w
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = io.Discard
	}
	return &JSONFormatter{
		writer: w,
		events: make([]JSONEvent, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(totalFiles int, dryRun bool) error {
	return nil
}

// Progress accumulates a per-file event
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	event := JSONEvent{
		Timestamp: time.Now(),
		Type:      update.Type,
		File:      update.FileName,
		Category:  update.Category,
	}
	if update.FinalName != "" && update.FinalName != update.FileName {
		event.FinalName = update.FinalName
	}
	if update.Error != nil {
		event.Error = update.Error.Error()
	}
	f.events = append(f.events, event)
	return nil
}

// Complete emits the full report document
func (f *JSONFormatter) Complete(summary *models.RunSummary) error {
	report := JSONReport{
		RunID:       summary.RunID,
		Source:      summary.SourcePath,
		Destination: summary.DestPath,
		DryRun:      summary.DryRun,
		Status:      string(summary.Status),
		Duration:    summary.Duration.Round(time.Millisecond).String(),
		DurationMs:  summary.Duration.Milliseconds(),
		Scanned:     summary.FilesScanned,
		Moved:       len(summary.Successes),
		Failed:      len(summary.Failures),
		Events:      f.events,
	}
	for _, cc := range summary.CategoryCounts {
		report.Categories = append(report.Categories, JSONCategoryCount{
			Category: cc.Category,
			Count:    cc.Count,
		})
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// Error reports a fatal error as a JSON document
func (f *JSONFormatter) Error(err error) error {
	doc := map[string]string{"error": err.Error()}
	return json.NewEncoder(f.writer).Encode(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string { return "json" }
