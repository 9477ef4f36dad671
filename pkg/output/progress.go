package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/sdevries/fileshelf/pkg/models"
)

// ProgressFormatter renders a progress bar while files are processed
// and falls back to the human summary once the run completes. Errors
// are surfaced immediately so they are not hidden behind the bar.
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
	human  *HumanFormatter
}

// NewProgressFormatter creates a new progress bar formatter writing to w
func NewProgressFormatter(w io.Writer) *ProgressFormatter {
	if w == nil {
		w = io.Discard
	}
	return &ProgressFormatter{
		writer: w,
		human:  NewHumanFormatter(w),
	}
}

// Start initializes the progress bar
func (f *ProgressFormatter) Start(totalFiles int, dryRun bool) error {
	if totalFiles == 0 {
		return nil
	}
	f.bar = pb.New(totalFiles)
	f.bar.SetTemplate(pb.Simple)
	f.bar.SetWriter(f.writer)
	f.bar.Start()
	return nil
}

// Progress advances the bar by one file
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	if f.bar == nil {
		return nil
	}
	if update.Type == EventError {
		// Write through the bar so the line is not overwritten
		f.bar.Write()
	}
	f.bar.Increment()
	return nil
}

// Complete stops the bar and prints the human summary
func (f *ProgressFormatter) Complete(summary *models.RunSummary) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.human.Complete(summary)
}

// Error reports a fatal error
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.human.Error(err)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string { return "progress" }
