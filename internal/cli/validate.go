package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sdevries/fileshelf/internal/platform"
	"github.com/sdevries/fileshelf/pkg/config"
	"github.com/sdevries/fileshelf/pkg/logging"
	"github.com/sdevries/fileshelf/pkg/models"
	"github.com/sdevries/fileshelf/pkg/output"
)

// resolvePaths determines the absolute source and destination paths
// from arguments, flags and configuration. Destination defaults to the
// source directory.
func resolvePaths(cfg *config.Config, args []string) (source, dest string, err error) {
	source = cfg.Organize.DefaultSource
	if len(args) > 0 && args[0] != "" {
		source = args[0]
	}

	if err := platform.ValidatePath(source); err != nil {
		return "", "", err
	}

	source, err = filepath.Abs(platform.NormalizePath(source))
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve source path: %w", err)
	}

	dest = source
	if organizeFlags.Dest != "" {
		if err := platform.ValidatePath(organizeFlags.Dest); err != nil {
			return "", "", err
		}

		dest, err = filepath.Abs(platform.NormalizePath(organizeFlags.Dest))
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve destination path: %w", err)
		}

		info, statErr := os.Stat(dest)
		if os.IsNotExist(statErr) {
			// Category folders are created on demand, but the
			// destination root itself must exist up front
			return "", "", fmt.Errorf("destination path does not exist: %s", dest)
		} else if statErr != nil {
			return "", "", fmt.Errorf("failed to access destination path: %w", statErr)
		} else if !info.IsDir() {
			return "", "", fmt.Errorf("destination path is not a directory: %s", dest)
		}
	}

	return source, dest, nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	// Output format
	if organizeFlags.Output != "" {
		cfg.Output.Format = organizeFlags.Output
	}

	// Progress bar
	if organizeFlags.Progress {
		cfg.Output.Progress = true
	}

	// Logging
	if organizeFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = organizeFlags.LogFile
		cfg.Logging.Format = organizeFlags.LogFormat
		cfg.Logging.Level = organizeFlags.LogLevel
	}

	// Quiet mode suppresses per-file output and the progress bar
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Verbose mode upgrades log level
	if globalFlags.Verbose && cfg.Logging.Level == "info" {
		cfg.Logging.Level = "debug"
	}
}

// newRun creates an organize run from the resolved paths
func newRun(source, dest string, dryRun bool) (*models.OrganizeRun, error) {
	run := &models.OrganizeRun{
		ID:         uuid.New().String(),
		SourcePath: source,
		DestPath:   dest,
		DryRun:     dryRun,
		CreatedAt:  time.Now(),
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}

	return run, nil
}

// newFormatter creates the output formatter for the run
func newFormatter(cfg *config.Config) output.Formatter {
	if cfg.Output.Quiet {
		return output.NewNullFormatter()
	}

	switch {
	case cfg.Output.Format == "json":
		return output.NewJSONFormatter(os.Stdout)
	case cfg.Output.Progress:
		return output.NewProgressFormatter(os.Stdout)
	default:
		return output.NewHumanFormatter(os.Stdout)
	}
}

// newLogger creates the logger for the run
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}
