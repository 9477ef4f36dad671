package models

import (
	"sort"
	"time"
)

// RunSummary aggregates the results of one organize invocation. It is
// created empty when the run starts, appended to as each file is
// processed, and finalized once enumeration completes. The Organizer
// owns the summary exclusively until it is returned to the caller.
type RunSummary struct {
	// Run details
	RunID      string
	SourcePath string
	DestPath   string
	DryRun     bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// FilesScanned is the number of regular files in the snapshot
	FilesScanned int

	// Successes lists completed moves in processing order
	Successes []MoveSuccess

	// Failures lists failed moves in processing order
	Failures []MoveFailure

	// Previews lists dry-run assignments in processing order
	Previews []PreviewEntry

	// CategoryCounts is derived from Successes at finalization,
	// sorted by category label
	CategoryCounts []CategoryCount

	// Status is the overall run result
	Status RunStatus
}

// CategoryCount holds the number of files moved into one category
type CategoryCount struct {
	Category string
	Count    int
}

// AddSuccess appends a success record
func (s *RunSummary) AddSuccess(originalName, category, finalName string) {
	s.Successes = append(s.Successes, MoveSuccess{
		OriginalName: originalName,
		Category:     category,
		FinalName:    finalName,
	})
}

// AddFailure appends a failure record
func (s *RunSummary) AddFailure(originalName string, err error) {
	s.Failures = append(s.Failures, MoveFailure{
		OriginalName: originalName,
		Error:        err.Error(),
		Timestamp:    time.Now(),
	})
}

// AddPreview appends a dry-run preview entry
func (s *RunSummary) AddPreview(name, category string) {
	s.Previews = append(s.Previews, PreviewEntry{Name: name, Category: category})
}

// Empty returns true if the source snapshot contained no regular files
func (s *RunSummary) Empty() bool {
	return s.FilesScanned == 0
}

// Finalize derives the per-category counts from the success list and
// computes the overall status. The summary is read-only afterwards.
func (s *RunSummary) Finalize() {
	counts := make(map[string]int)
	for _, success := range s.Successes {
		counts[success.Category]++
	}

	s.CategoryCounts = s.CategoryCounts[:0]
	for category, count := range counts {
		s.CategoryCounts = append(s.CategoryCounts, CategoryCount{
			Category: category,
			Count:    count,
		})
	}
	sort.Slice(s.CategoryCounts, func(i, j int) bool {
		return s.CategoryCounts[i].Category < s.CategoryCounts[j].Category
	})

	s.EndTime = time.Now()
	if !s.StartTime.IsZero() {
		s.Duration = s.EndTime.Sub(s.StartTime)
	}

	switch {
	case s.FilesScanned == 0:
		s.Status = StatusEmpty
	case len(s.Failures) == 0:
		s.Status = StatusSuccess
	case len(s.Successes) == 0 && !s.DryRun:
		s.Status = StatusFailed
	default:
		s.Status = StatusPartial
	}
}
