package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/fincalc"
)

// decFlag parses a decimal command-line value, keeping money out of floats.
func decFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}

func newLoanCommand() *cobra.Command {
	var principal, rate string
	var months int
	var showSchedule bool

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Compute EMI and amortization schedule for a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decFlag("principal", principal)
			if err != nil {
				return err
			}
			r, err := decFlag("rate", rate)
			if err != nil {
				return err
			}

			result, err := fincalc.Amortize(p, r, months)
			if err != nil {
				return err
			}

			fmt.Printf("EMI:            %s\n", result.EMI.StringFixed(2))
			fmt.Printf("Total payable:  %s\n", result.TotalAmount.StringFixed(2))
			fmt.Printf("Total interest: %s\n", result.TotalInterest.StringFixed(2))

			if showSchedule {
				fmt.Println()
				fmt.Println("Month  Payment      Principal    Interest     Balance")
				for _, row := range result.Schedule {
					fmt.Printf("%5d  %-11s  %-11s  %-11s  %s\n",
						row.Period,
						row.Payment.StringFixed(2),
						row.Principal.StringFixed(2),
						row.Interest.StringFixed(2),
						row.Balance.StringFixed(2))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "loan principal (required)")
	_ = cmd.MarkFlagRequired("principal")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual interest rate percent")
	cmd.Flags().IntVar(&months, "months", 0, "loan term in months (required)")
	_ = cmd.MarkFlagRequired("months")
	cmd.Flags().BoolVar(&showSchedule, "schedule", false, "print the full amortization table")

	return cmd
}
