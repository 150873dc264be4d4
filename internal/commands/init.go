package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/bills"
	"github.com/venkatkrish78/finplanner-sub001/internal/categories"
	"github.com/venkatkrish78/finplanner-sub001/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new FinPlanner project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	// Create directory structure.
	dirs := []string{
		"inbox",
		filepath.Join("inbox", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write finplanner.yaml.
	if err := config.Save(filepath.Join(dir, "finplanner.yaml"), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default category keyword table.
	svc := categories.NewService(categories.DefaultCategories())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	// Write an empty bill list.
	if err := bills.Save(dir, nil); err != nil {
		return fmt.Errorf("writing bills: %w", err)
	}

	// Write inbox/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "inbox", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized FinPlanner project at %s\n", dir)
	return nil
}
