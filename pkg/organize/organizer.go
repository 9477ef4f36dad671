package organize

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sdevries/fileshelf/pkg/classify"
	"github.com/sdevries/fileshelf/pkg/logging"
	"github.com/sdevries/fileshelf/pkg/models"
	"github.com/sdevries/fileshelf/pkg/output"
	"github.com/sdevries/fileshelf/pkg/storage"
)

// Organizer relocates the regular files of one directory into
// per-category subdirectories. One Organizer executes one run; the
// run's summary is owned by the organizer until Run returns it.
type Organizer struct {
	backend    storage.Backend
	classifier *classify.Classifier
	formatter  output.Formatter
	logger     logging.Logger
	run        *models.OrganizeRun

	// now is replaceable so tests can pin collision timestamps
	now func() time.Time
}

// New creates an organizer for the given run. The backend must be
// rooted at the run's source directory. Formatter and logger may be
// nil when no output is wanted.
func New(
	backend storage.Backend,
	classifier *classify.Classifier,
	formatter output.Formatter,
	logger logging.Logger,
	run *models.OrganizeRun,
) *Organizer {
	if formatter == nil {
		formatter = output.NewNullFormatter()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Organizer{
		backend:    backend,
		classifier: classifier,
		formatter:  formatter,
		logger:     logger,
		run:        run,
		now:        time.Now,
	}
}

// Run executes the organize operation. The source listing is
// snapshotted once before any moves begin, files are processed
// sequentially in listing order, and every per-file error is recorded
// in the summary rather than aborting the run. Only an unreadable
// source directory is fatal.
func (o *Organizer) Run(ctx context.Context) (*models.RunSummary, error) {
	started := o.now()
	o.run.StartedAt = &started

	summary := &models.RunSummary{
		RunID:      o.run.ID,
		SourcePath: o.run.SourcePath,
		DestPath:   o.run.DestPath,
		DryRun:     o.run.DryRun,
		StartTime:  started,
	}

	entries, err := o.backend.List(ctx)
	if err != nil {
		return nil, err
	}

	// Keep regular files only: subdirectories are skipped, which also
	// covers category folders already present when destination equals
	// source.
	files := make([]storage.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsRegular {
			files = append(files, entry)
		}
	}
	summary.FilesScanned = len(files)

	o.logger.Info(ctx, "organize run started", logging.Fields{
		"run_id":  o.run.ID,
		"source":  o.run.SourcePath,
		"dest":    o.run.DestPath,
		"dry_run": o.run.DryRun,
		"files":   len(files),
	})

	o.formatter.Start(len(files), o.run.DryRun)

	for i, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry := &models.FileEntry{
			Name:         file.Name,
			AbsolutePath: file.Path,
			ParentDir:    o.run.SourcePath,
			Size:         file.Size,
			ModTime:      file.ModTime,
		}
		category := o.classifier.CategoryOf(entry.Ext())

		if o.run.DryRun {
			summary.AddPreview(entry.Name, category)
			o.formatter.Progress(output.ProgressUpdate{
				Type:        output.EventPreview,
				FileName:    entry.Name,
				Category:    category,
				CurrentFile: i + 1,
			})
			continue
		}

		finalName, err := o.moveFile(ctx, entry, category)
		if err != nil {
			summary.AddFailure(entry.Name, err)
			o.logger.Error(ctx, "move failed", err, logging.Fields{
				"file":     entry.Name,
				"category": category,
			})
			o.formatter.Progress(output.ProgressUpdate{
				Type:        output.EventError,
				FileName:    entry.Name,
				Category:    category,
				CurrentFile: i + 1,
				Error:       err,
			})
			continue
		}

		summary.AddSuccess(entry.Name, category, finalName)
		o.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventMoved,
			FileName:    entry.Name,
			FinalName:   finalName,
			Category:    category,
			CurrentFile: i + 1,
		})
	}

	summary.Finalize()
	completed := summary.EndTime
	o.run.CompletedAt = &completed

	o.logger.Info(ctx, "organize run finished", logging.Fields{
		"run_id":    o.run.ID,
		"status":    string(summary.Status),
		"successes": len(summary.Successes),
		"failures":  len(summary.Failures),
	})

	o.formatter.Complete(summary)

	return summary, nil
}

// moveFile relocates one classified file and returns the name it ended
// up with inside the category directory.
func (o *Organizer) moveFile(ctx context.Context, entry *models.FileEntry, category string) (string, error) {
	categoryDir := filepath.Join(o.run.DestPath, category)
	if err := o.backend.MkdirAll(ctx, categoryDir); err != nil {
		return "", err
	}

	finalName, err := o.destinationName(ctx, categoryDir, entry)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(categoryDir, finalName)
	if err := o.backend.Move(ctx, entry.AbsolutePath, dst); err != nil {
		return "", err
	}

	return finalName, nil
}
