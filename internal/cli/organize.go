package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdevries/fileshelf/pkg/classify"
	"github.com/sdevries/fileshelf/pkg/organize"
	"github.com/sdevries/fileshelf/pkg/output"
	"github.com/sdevries/fileshelf/pkg/storage"
)

// OrganizeFlags holds organize command flags
type OrganizeFlags struct {
	Dest         string
	DryRun       bool
	Output       string
	Progress     bool
	Report       string
	ReportFormat string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var organizeFlags OrganizeFlags

// NewOrganizeCommand creates the organize command
func NewOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [source]",
		Short: "Organize files into category folders",
		Long: `Scan a directory, classify each regular file by its extension and
move it into a per-category subdirectory (Images, Videos, Documents, ...).
Defaults to the current directory when no source is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOrganize,
	}

	addOrganizeFlags(cmd)

	return cmd
}

func addOrganizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&organizeFlags.Dest, "dest", "d", "", "destination directory (default: same as source)")
	cmd.Flags().BoolVar(&organizeFlags.DryRun, "dry-run", false, "preview what would be organized without moving files")
	cmd.Flags().StringVarP(&organizeFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().BoolVar(&organizeFlags.Progress, "progress", false, "show a progress bar")
	cmd.Flags().StringVar(&organizeFlags.Report, "report", "", "write the run summary to a file")
	cmd.Flags().StringVar(&organizeFlags.ReportFormat, "report-format", "human", "report format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&organizeFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&organizeFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&organizeFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	// Resolve and validate source and destination paths
	source, dest, err := resolvePaths(cfg, args)
	if err != nil {
		return err
	}

	// Create the run
	run, err := newRun(source, dest, organizeFlags.DryRun)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	// Open the source backend; a missing source fails here, before
	// any enumeration
	backend, err := storage.NewLocal(source)
	if err != nil {
		return fmt.Errorf("source not found: %w", err)
	}
	defer backend.Close()

	// Create output formatter
	formatter := newFormatter(cfg)

	// Create logger
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Run the organizer
	organizer := organize.New(backend, classify.New(classify.DefaultTable), formatter, logger, run)
	summary, err := organizer.Run(ctx)
	if err != nil {
		return fmt.Errorf("organize failed: %w", err)
	}

	// Write summary report if requested
	if organizeFlags.Report != "" {
		if err := output.WriteSummaryReport(summary, organizeFlags.Report, organizeFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	// Exit with appropriate code
	if code := summary.Status.ExitCode(); code != 0 {
		logger.Close()
		os.Exit(code)
	}
	return nil
}
