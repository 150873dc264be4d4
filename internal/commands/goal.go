package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/fincalc"
)

func newGoalCommand() *cobra.Command {
	var target, current, monthly string
	var byDate string

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Project a savings goal by date or by monthly contribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := decFlag("target", target)
			if err != nil {
				return err
			}
			c, err := decFlag("current", current)
			if err != nil {
				return err
			}

			params := fincalc.GoalParams{Target: t, Current: c}

			if byDate != "" {
				date, err := time.Parse("2006-01-02", byDate)
				if err != nil {
					return fmt.Errorf("invalid --by %q: %w", byDate, err)
				}
				params.TargetDate = date
			}
			if monthly != "" {
				m, err := decFlag("monthly", monthly)
				if err != nil {
					return err
				}
				params.MonthlyContribution = m
			}

			result, err := fincalc.GoalProjection(params, time.Now())
			if err != nil {
				return err
			}

			if result.Months == 0 {
				fmt.Println("Goal already reached")
				return nil
			}
			fmt.Printf("Months:            %d\n", result.Months)
			fmt.Printf("Required monthly:  %s\n", result.RequiredMonthly.Round(2).StringFixed(2))
			fmt.Printf("Completion:        %s\n", result.CompletionDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&current, "current", "0", "amount saved so far")
	cmd.Flags().StringVar(&byDate, "by", "", "target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&monthly, "monthly", "", "planned monthly contribution")

	return cmd
}
