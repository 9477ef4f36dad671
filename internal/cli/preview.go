package cli

import (
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [source]",
		Short: "Preview organization without moving files (dry-run)",
		Long: `Classify the files of a directory and report where each one would
be moved, without touching the filesystem. This is equivalent to
organize --dry-run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Force dry-run mode for the preview command
			organizeFlags.DryRun = true
			return runOrganize(cmd, args)
		},
	}

	// Reuse organize flags for preview
	addOrganizeFlags(cmd)

	return cmd
}
