package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/categories"
)

func newCategoriesCommand() *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "categories",
		Short: "Category suggestion operations",
	}
	catCmd.AddCommand(newCategoriesSuggestCommand())
	return catCmd
}

func newCategoriesSuggestCommand() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "suggest <text>...",
		Short: "Suggest a category for transaction text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc, err := categories.Load(absRoot)
			if err != nil {
				// No project file; fall back to the built-in table.
				svc = categories.NewService(categories.DefaultCategories())
			}

			name, ok := svc.Suggest(strings.Join(args, " "), "")
			if !ok {
				fmt.Println("No suggestion")
				return nil
			}
			fmt.Println(name)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project directory")

	return cmd
}
