package output

import (
	"fmt"
	"io"
	"time"

	"github.com/sdevries/fileshelf/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalFiles int
	dryRun     bool
}

// NewHumanFormatter creates a new human-readable formatter writing to w
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	if w == nil {
		w = io.Discard
	}
	return &HumanFormatter{writer: w}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(totalFiles int, dryRun bool) error {
	f.totalFiles = totalFiles
	f.dryRun = dryRun

	if totalFiles == 0 {
		return nil
	}
	if dryRun {
		fmt.Fprintf(f.writer, "[DRY RUN] Previewing %d files\n\n", totalFiles)
	} else {
		fmt.Fprintf(f.writer, "Organizing %d files\n\n", totalFiles)
	}
	return nil
}

// Progress reports a per-file outcome
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	switch update.Type {
	case EventMoved:
		if update.FinalName != update.FileName {
			fmt.Fprintf(f.writer, "✓ Moved: %s → %s/%s (renamed)\n",
				update.FileName, update.Category, update.FinalName)
		} else {
			fmt.Fprintf(f.writer, "✓ Moved: %s → %s/\n", update.FileName, update.Category)
		}

	case EventError:
		fmt.Fprintf(f.writer, "✗ Error moving %s: %v\n", update.FileName, update.Error)

	case EventPreview:
		fmt.Fprintf(f.writer, "Would move: %s → %s/\n", update.FileName, update.Category)
	}

	return nil
}

// Complete finalizes output and displays the summary
func (f *HumanFormatter) Complete(summary *models.RunSummary) error {
	if summary.Empty() {
		fmt.Fprintln(f.writer, "No files found to organize.")
		return nil
	}

	fmt.Fprintf(f.writer, "\n%s\n", divider)
	if summary.DryRun {
		fmt.Fprintln(f.writer, "DRY RUN COMPLETE - no files were moved")
	} else {
		fmt.Fprintln(f.writer, "ORGANIZATION COMPLETE")
		fmt.Fprintf(f.writer, "Files moved: %d\n", len(summary.Successes))
		if len(summary.Failures) > 0 {
			fmt.Fprintf(f.writer, "Errors: %d\n", len(summary.Failures))
			for _, failure := range summary.Failures {
				fmt.Fprintf(f.writer, "  - %s: %s\n", failure.OriginalName, failure.Error)
			}
		}
	}

	if len(summary.CategoryCounts) > 0 {
		fmt.Fprintln(f.writer, "\nFiles by category:")
		for _, cc := range summary.CategoryCounts {
			fmt.Fprintf(f.writer, "  %s: %d file(s)\n", cc.Category, cc.Count)
		}
	}

	fmt.Fprintf(f.writer, "\nCompleted in %s\n", summary.Duration.Round(time.Millisecond))

	return nil
}

// Error reports a fatal error
func (f *HumanFormatter) Error(err error) error {
	fmt.Fprintf(f.writer, "Error: %v\n", err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string { return "human" }

const divider = "=================================================="
