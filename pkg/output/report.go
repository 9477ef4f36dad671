package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdevries/fileshelf/pkg/models"
)

// WriteSummaryReport writes the run summary to a file.
// Format can be "human" or "json".
func WriteSummaryReport(summary *models.RunSummary, path string, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		return writeSummaryJSON(summary, file)
	default: // "human"
		return writeSummaryHuman(summary, file)
	}
}

// writeSummaryHuman writes the summary in human-readable format
func writeSummaryHuman(summary *models.RunSummary, w io.Writer) error {
	fmt.Fprintf(w, "Organize Report\n")
	fmt.Fprintf(w, "===============\n\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Run ID: %s\n", summary.RunID)
	fmt.Fprintf(w, "Source: %s\n", summary.SourcePath)
	fmt.Fprintf(w, "Destination: %s\n", summary.DestPath)
	fmt.Fprintf(w, "Dry Run: %v\n", summary.DryRun)
	fmt.Fprintf(w, "Status: %s\n\n", summary.Status)

	if summary.DryRun {
		fmt.Fprintf(w, "Previewed Files: %d\n\n", len(summary.Previews))
		for _, preview := range summary.Previews {
			fmt.Fprintf(w, "  %s → %s/\n", preview.Name, preview.Category)
		}
		return nil
	}

	fmt.Fprintf(w, "Files Moved: %d\n", len(summary.Successes))
	for _, success := range summary.Successes {
		if success.FinalName != success.OriginalName {
			fmt.Fprintf(w, "  %s → %s/%s (renamed)\n",
				success.OriginalName, success.Category, success.FinalName)
		} else {
			fmt.Fprintf(w, "  %s → %s/\n", success.OriginalName, success.Category)
		}
	}

	if len(summary.Failures) > 0 {
		fmt.Fprintf(w, "\nFailures: %d\n", len(summary.Failures))
		for _, failure := range summary.Failures {
			fmt.Fprintf(w, "  %s: %s\n", failure.OriginalName, failure.Error)
		}
	}

	if len(summary.CategoryCounts) > 0 {
		fmt.Fprintf(w, "\nBy Category:\n")
		for _, cc := range summary.CategoryCounts {
			fmt.Fprintf(w, "  %s: %d\n", cc.Category, cc.Count)
		}
	}

	return nil
}

// writeSummaryJSON writes the summary as a JSON document
func writeSummaryJSON(summary *models.RunSummary, w io.Writer) error {
	formatter := NewJSONFormatter(w)
	return formatter.Complete(summary)
}
