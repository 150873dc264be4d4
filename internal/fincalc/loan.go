package fincalc

import (
	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// AmortizationResult is the full repayment picture for one loan.
type AmortizationResult struct {
	EMI           decimal.Decimal
	TotalAmount   decimal.Decimal // EMI x term, rounded to 2 places
	TotalInterest decimal.Decimal // TotalAmount - principal, rounded to 2 places
	Schedule      []model.AmortizationRow
}

// Amortize computes the equated monthly installment and the month-by-month
// schedule for a loan. The schedule ends at the earlier of termMonths or the
// period in which the balance reaches zero; the final row's payment absorbs
// any residual so the balance lands exactly on zero.
func Amortize(principal, annualRatePct decimal.Decimal, termMonths int) (AmortizationResult, error) {
	if !principal.IsPositive() {
		return AmortizationResult{}, errPositive("principal")
	}
	if annualRatePct.IsNegative() {
		return AmortizationResult{}, errNonNegative("annual rate")
	}
	if termMonths < 1 {
		return AmortizationResult{}, errPositive("term")
	}
	if termMonths > maxTermMonths {
		return AmortizationResult{}, errTermTooLong("term", termMonths)
	}

	r := monthlyRate(annualRatePct)
	term := decimal.NewFromInt(int64(termMonths))

	var emi decimal.Decimal
	if r.IsZero() {
		// Interest-free loan: straight division, no compounding.
		emi = principal.Div(term)
	} else {
		// emi = P * r * (1+r)^n / ((1+r)^n - 1)
		factor := one.Add(r).Pow(term)
		emi = principal.Mul(r).Mul(factor).Div(factor.Sub(one))
	}

	schedule := make([]model.AmortizationRow, 0, termMonths)
	balance := principal
	for period := 1; period <= termMonths; period++ {
		interest := balance.Mul(r)
		principalPart := emi.Sub(interest)
		if period == termMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		balance = balance.Sub(principalPart)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		schedule = append(schedule, model.AmortizationRow{
			Period:    period,
			Payment:   interest.Add(principalPart),
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
		if balance.IsZero() {
			break
		}
	}

	totalAmount := emi.Mul(term).Round(2)
	return AmortizationResult{
		EMI:           emi,
		TotalAmount:   totalAmount,
		TotalInterest: totalAmount.Sub(principal).Round(2),
		Schedule:      schedule,
	}, nil
}
