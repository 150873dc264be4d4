package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/fincalc"
)

func newSIPCommand() *cobra.Command {
	var amount, rate string
	var years int
	var showSchedule bool

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project the maturity value of a monthly SIP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := decFlag("amount", amount)
			if err != nil {
				return err
			}
			r, err := decFlag("rate", rate)
			if err != nil {
				return err
			}

			result, err := fincalc.SIPMaturity(a, r, years)
			if err != nil {
				return err
			}

			fmt.Printf("Maturity value: %s\n", result.MaturityAmount.StringFixed(2))
			fmt.Printf("Invested:       %s\n", result.TotalInvested.StringFixed(2))
			fmt.Printf("Returns:        %s\n", result.TotalReturns.StringFixed(2))

			if showSchedule {
				fmt.Println()
				fmt.Println("Month  Invested     Value        Return")
				for _, row := range result.Schedule {
					fmt.Printf("%5d  %-11s  %-11s  %s\n",
						row.Period,
						row.Contributed.StringFixed(2),
						row.Value.StringFixed(2),
						row.Return.StringFixed(2))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "monthly investment amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&rate, "rate", "", "expected annual return percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().IntVar(&years, "years", 0, "investment horizon in years (required)")
	_ = cmd.MarkFlagRequired("years")
	cmd.Flags().BoolVar(&showSchedule, "schedule", false, "print the month-by-month projection")

	return cmd
}

func newGrowthCommand() *cobra.Command {
	var initial, rate, monthly string
	var years int

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project compound growth of an investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := decFlag("initial", initial)
			if err != nil {
				return err
			}
			r, err := decFlag("rate", rate)
			if err != nil {
				return err
			}
			m, err := decFlag("monthly", monthly)
			if err != nil {
				return err
			}

			result, err := fincalc.Growth(i, r, years, m)
			if err != nil {
				return err
			}

			fmt.Printf("Future value: %s\n", result.FutureValue.StringFixed(2))
			fmt.Printf("Invested:     %s\n", result.TotalInvestment.StringFixed(2))
			fmt.Printf("Returns:      %s\n", result.TotalReturns.StringFixed(2))
			fmt.Printf("CAGR:         %s%%\n", result.CAGR.Mul(decimal.NewFromInt(100)).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "", "initial investment (required)")
	_ = cmd.MarkFlagRequired("initial")
	cmd.Flags().StringVar(&rate, "rate", "", "expected annual return percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().IntVar(&years, "years", 0, "horizon in years (required)")
	_ = cmd.MarkFlagRequired("years")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "recurring monthly addition")

	return cmd
}
