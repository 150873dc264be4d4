// Package fincalc holds the loan, SIP, growth, and goal arithmetic. All
// functions are pure: same inputs, same outputs, no clock or I/O other than
// what the caller passes in. Money stays in decimals end to end; schedules
// are carried at full precision and rounded only by display code.
package fincalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxTermMonths bounds every schedule loop. The formulas themselves accept
// any term, but a hostile term would otherwise allocate an unbounded table.
const maxTermMonths = 1200

// monthsPerYear converts year inputs into schedule lengths.
const monthsPerYear = 12

// ValidationError reports a rejected calculator input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func errPositive(field string) error {
	return &ValidationError{Field: field, Reason: "must be positive"}
}

func errNonNegative(field string) error {
	return &ValidationError{Field: field, Reason: "must not be negative"}
}

func errTermTooLong(field string, months int) error {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("%d months exceeds the %d month limit", months, maxTermMonths),
	}
}

var one = decimal.NewFromInt(1)

// monthlyRate converts an annual percentage rate into a per-month fraction.
func monthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return annualRatePct.Div(decimal.NewFromInt(100 * monthsPerYear))
}
