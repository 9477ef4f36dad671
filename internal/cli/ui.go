package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdevries/fileshelf/internal/tui"
)

// NewUICommand creates the ui command
func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Organize files interactively",
		Long: `Start an interactive terminal interface to pick source and
destination directories, preview the classification and run the
organizer. Requires a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return tui.Run(cfg.Organize.DefaultSource)
		},
	}
}
