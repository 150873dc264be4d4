package model

import "github.com/shopspring/decimal"

// AmortizationRow is one period of a loan repayment schedule.
type AmortizationRow struct {
	Period    int // 1-based month number
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal // remaining principal, floored at zero
}

// GrowthRow is one period of an investment projection.
// Value minus Contributed always equals Return.
type GrowthRow struct {
	Period      int
	Contributed decimal.Decimal
	Value       decimal.Decimal
	Return      decimal.Decimal
}
