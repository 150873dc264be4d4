package fincalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// goalMonth is the 30-day month approximation used when converting a target
// date into a number of remaining contribution months.
const goalMonth = 30 * 24 * time.Hour

// GoalParams describes a savings goal. Exactly one of TargetDate (non-zero)
// or MonthlyContribution (positive) must be supplied.
type GoalParams struct {
	Target              decimal.Decimal
	Current             decimal.Decimal
	TargetDate          time.Time
	MonthlyContribution decimal.Decimal
}

// GoalResult answers either "how much per month" (date given) or "how long"
// (contribution given). Months is zero when the goal is already reached.
type GoalResult struct {
	Months          int
	RequiredMonthly decimal.Decimal
	CompletionDate  time.Time
}

// GoalProjection computes what it takes to reach a savings target. The
// caller supplies the reference clock so projections stay deterministic.
func GoalProjection(p GoalParams, now time.Time) (GoalResult, error) {
	if !p.Target.IsPositive() {
		return GoalResult{}, errPositive("target amount")
	}
	if p.Current.IsNegative() {
		return GoalResult{}, errNonNegative("current amount")
	}
	hasDate := !p.TargetDate.IsZero()
	hasContribution := p.MonthlyContribution.IsPositive()
	if !hasDate && !hasContribution {
		return GoalResult{}, &ValidationError{
			Field:  "goal",
			Reason: "either a target date or a monthly contribution is required",
		}
	}

	remaining := p.Target.Sub(p.Current)
	if !remaining.IsPositive() {
		return GoalResult{Months: 0, RequiredMonthly: decimal.Zero, CompletionDate: now}, nil
	}

	if hasDate {
		months := int(p.TargetDate.Sub(now) / goalMonth)
		if p.TargetDate.Sub(now)%goalMonth > 0 {
			months++
		}
		if months < 1 {
			months = 1
		}
		return GoalResult{
			Months:          months,
			RequiredMonthly: remaining.Div(decimal.NewFromInt(int64(months))),
			CompletionDate:  p.TargetDate,
		}, nil
	}

	months := int(remaining.Div(p.MonthlyContribution).Ceil().IntPart())
	return GoalResult{
		Months:          months,
		RequiredMonthly: p.MonthlyContribution,
		CompletionDate:  now.AddDate(0, months, 0),
	}, nil
}
