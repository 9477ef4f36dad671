package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdevries/fileshelf/pkg/classify"
	"github.com/sdevries/fileshelf/pkg/output"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	var lint bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category table",
		Long: `Display the built-in table mapping file extensions to categories.
Extensions not present in any category are filed under "Others".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderCategoryTable(classify.DefaultTable))

			if lint {
				duplicates := classify.Lint(classify.DefaultTable)
				if len(duplicates) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No duplicate extensions found.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Duplicate extensions (%d):\n", len(duplicates))
				for _, dup := range duplicates {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s claimed by %s, resolves to %s\n",
						dup.Extension, strings.Join(dup.Categories, ", "), dup.ResolvesTo)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&lint, "lint", false, "report extensions claimed by more than one category")

	return cmd
}
