package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finplanner",
		Short:   "Personal finance planning from the command line",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newLoanCommand())
	rootCmd.AddCommand(newSIPCommand())
	rootCmd.AddCommand(newGrowthCommand())
	rootCmd.AddCommand(newGoalCommand())
	rootCmd.AddCommand(newBillsCommand())
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}
