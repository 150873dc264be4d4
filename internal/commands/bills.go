package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/bills"
	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

func newBillsCommand() *cobra.Command {
	billsCmd := &cobra.Command{
		Use:   "bills",
		Short: "Recurring bill operations",
	}
	billsCmd.AddCommand(newBillsNextCommand())
	return billsCmd
}

func newBillsNextCommand() *cobra.Command {
	var root string
	var days int

	cmd := &cobra.Command{
		Use:   "next",
		Short: "List bill instances due in the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runBillsNext(absRoot, days, time.Now())
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project directory")
	cmd.Flags().IntVar(&days, "days", 30, "look-ahead window in days")

	return cmd
}

func runBillsNext(root string, days int, now time.Time) error {
	billList, err := bills.Load(root)
	if err != nil {
		return err
	}
	if len(billList) == 0 {
		fmt.Println("No bills configured")
		return nil
	}

	until := now.AddDate(0, 0, days)
	var upcoming []model.BillInstance
	for _, b := range billList {
		instances, err := bills.Instances(b, now, until)
		if err != nil {
			return err
		}
		upcoming = append(upcoming, instances...)
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	if len(upcoming) == 0 {
		fmt.Printf("Nothing due in the next %d days\n", days)
		return nil
	}
	for _, inst := range upcoming {
		fmt.Printf("%s  %-20s %s\n", inst.DueDate.Format("2006-01-02"), inst.Bill, inst.Amount.StringFixed(2))
	}
	return nil
}
