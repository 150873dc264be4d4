package fincalc

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// SIPResult is the outcome of a systematic investment plan projection.
type SIPResult struct {
	MaturityAmount decimal.Decimal
	TotalInvested  decimal.Decimal
	TotalReturns   decimal.Decimal
	Schedule       []model.GrowthRow // value at the end of each month
}

// SIPMaturity projects a recurring monthly investment using the annuity-due
// formula: contributions are made at the start of each month and compound
// for the month they land in.
func SIPMaturity(monthlyAmount, annualRatePct decimal.Decimal, years int) (SIPResult, error) {
	if !monthlyAmount.IsPositive() {
		return SIPResult{}, errPositive("monthly amount")
	}
	if !annualRatePct.IsPositive() {
		return SIPResult{}, errPositive("annual rate")
	}
	if years < 1 {
		return SIPResult{}, errPositive("years")
	}
	totalMonths := years * monthsPerYear
	if totalMonths > maxTermMonths {
		return SIPResult{}, errTermTooLong("years", totalMonths)
	}

	r := monthlyRate(annualRatePct)
	onePlus := one.Add(r)

	schedule := make([]model.GrowthRow, 0, totalMonths)
	factor := one // (1+r)^m, advanced each month
	for m := 1; m <= totalMonths; m++ {
		factor = factor.Mul(onePlus)
		value := monthlyAmount.Mul(factor.Sub(one)).Div(r).Mul(onePlus)
		contributed := monthlyAmount.Mul(decimal.NewFromInt(int64(m)))
		schedule = append(schedule, model.GrowthRow{
			Period:      m,
			Contributed: contributed,
			Value:       value,
			Return:      value.Sub(contributed),
		})
	}

	final := schedule[len(schedule)-1]
	return SIPResult{
		MaturityAmount: final.Value,
		TotalInvested:  final.Contributed,
		TotalReturns:   final.Return,
		Schedule:       schedule,
	}, nil
}

// GrowthResult projects a lump sum, optionally with a recurring monthly
// addition on top.
type GrowthResult struct {
	FutureValue     decimal.Decimal
	TotalInvestment decimal.Decimal
	TotalReturns    decimal.Decimal
	CAGR            decimal.Decimal // annualized growth fraction, e.g. 0.12
	Schedule        []model.GrowthRow // value at the end of each year
}

// Growth compounds an initial investment annually and folds in the future
// value of any monthly addition stream.
func Growth(initial, annualRatePct decimal.Decimal, years int, monthlyAddition decimal.Decimal) (GrowthResult, error) {
	if !initial.IsPositive() {
		return GrowthResult{}, errPositive("initial amount")
	}
	if annualRatePct.IsNegative() {
		return GrowthResult{}, errNonNegative("annual rate")
	}
	if years < 1 {
		return GrowthResult{}, errPositive("years")
	}
	if years*monthsPerYear > maxTermMonths {
		return GrowthResult{}, errTermTooLong("years", years*monthsPerYear)
	}
	if monthlyAddition.IsNegative() {
		return GrowthResult{}, errNonNegative("monthly addition")
	}

	annual := one.Add(annualRatePct.Div(decimal.NewFromInt(100)))

	schedule := make([]model.GrowthRow, 0, years)
	for y := 1; y <= years; y++ {
		value := initial.Mul(annual.Pow(decimal.NewFromInt(int64(y))))
		value = value.Add(additionStreamValue(monthlyAddition, annualRatePct, y))
		contributed := initial.Add(monthlyAddition.Mul(decimal.NewFromInt(int64(y * monthsPerYear))))
		schedule = append(schedule, model.GrowthRow{
			Period:      y,
			Contributed: contributed,
			Value:       value,
			Return:      value.Sub(contributed),
		})
	}

	final := schedule[len(schedule)-1]
	return GrowthResult{
		FutureValue:     final.Value,
		TotalInvestment: final.Contributed,
		TotalReturns:    final.Return,
		CAGR:            cagr(final.Value, final.Contributed, years),
		Schedule:        schedule,
	}, nil
}

// additionStreamValue is the SIP-style future value of the monthly addition
// stream after the given number of years. Zero additions contribute zero.
func additionStreamValue(monthlyAddition, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	if monthlyAddition.IsZero() {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(years * monthsPerYear))
	r := monthlyRate(annualRatePct)
	if r.IsZero() {
		return monthlyAddition.Mul(months)
	}
	onePlus := one.Add(r)
	factor := onePlus.Pow(months)
	return monthlyAddition.Mul(factor.Sub(one)).Div(r).Mul(onePlus)
}

// cagr computes the annualized growth rate. The fractional exponent forces a
// float round trip; the result is truncated to 6 places on the way back.
func cagr(futureValue, totalInvestment decimal.Decimal, years int) decimal.Decimal {
	if !totalInvestment.IsPositive() || years < 1 {
		return decimal.Zero
	}
	ratio, _ := futureValue.Div(totalInvestment).Float64()
	if ratio <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(ratio, 1/float64(years)) - 1).Round(6)
}
