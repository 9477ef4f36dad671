package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdevries/fileshelf/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fileshelf",
		Short: "Organize files by type into category folders",
		Long: `fileshelf scans a directory, classifies each file by its extension
and moves it into a per-category subdirectory (Images, Videos,
Documents, Music, Archives, Code, Executables, Data or Others).
Supports dry-run previews and an interactive terminal interface.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewOrganizeCommand())
	rootCmd.AddCommand(cli.NewPreviewCommand())
	rootCmd.AddCommand(cli.NewCategoriesCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewUICommand())

	return rootCmd.Execute()
}
