package fincalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAmortize_KnownEMI(t *testing.T) {
	// 100000 at 12% over 12 months is the textbook case: EMI 8884.88.
	result, err := Amortize(dec("100000"), dec("12"), 12)
	require.NoError(t, err)

	assert.True(t, result.EMI.Round(2).Equal(dec("8884.88")), "EMI %s", result.EMI)
	assert.Len(t, result.Schedule, 12)
	assert.True(t, result.TotalAmount.Equal(dec("106618.55")), "total %s", result.TotalAmount)
	assert.True(t, result.TotalInterest.Equal(dec("6618.55")), "interest %s", result.TotalInterest)
}

func TestAmortize_PrincipalSumsToLoan(t *testing.T) {
	tests := []struct {
		principal string
		rate      string
		months    int
	}{
		{"100000", "12", 12},
		{"2500000", "8.5", 240},
		{"50000", "18", 36},
		{"999.99", "7.25", 7},
	}
	for _, tt := range tests {
		result, err := Amortize(dec(tt.principal), dec(tt.rate), tt.months)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, row := range result.Schedule {
			sum = sum.Add(row.Principal)
		}
		diff := sum.Sub(dec(tt.principal)).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01")),
			"%s@%s/%d: principal sum off by %s", tt.principal, tt.rate, tt.months, diff)
	}
}

func TestAmortize_BalanceMonotoneToZero(t *testing.T) {
	result, err := Amortize(dec("750000"), dec("9.5"), 60)
	require.NoError(t, err)

	prev := dec("750000")
	for _, row := range result.Schedule {
		assert.True(t, row.Balance.LessThanOrEqual(prev), "period %d balance grew", row.Period)
		assert.False(t, row.Balance.IsNegative(), "period %d balance negative", row.Period)
		assert.False(t, row.Principal.IsNegative(), "period %d principal negative", row.Period)
		assert.False(t, row.Interest.IsNegative(), "period %d interest negative", row.Period)
		prev = row.Balance
	}

	final := result.Schedule[len(result.Schedule)-1]
	assert.True(t, final.Balance.IsZero(), "final balance %s", final.Balance)
	assert.LessOrEqual(t, final.Period, 60)
}

func TestAmortize_ZeroRate(t *testing.T) {
	result, err := Amortize(dec("1200"), dec("0"), 12)
	require.NoError(t, err)

	assert.True(t, result.EMI.Equal(dec("100")), "EMI %s", result.EMI)
	assert.True(t, result.TotalInterest.IsZero(), "interest %s", result.TotalInterest)
	for _, row := range result.Schedule {
		assert.True(t, row.Interest.IsZero(), "period %d has interest", row.Period)
	}
}

func TestAmortize_Validation(t *testing.T) {
	var verr *ValidationError

	_, err := Amortize(dec("0"), dec("10"), 12)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "principal", verr.Field)

	_, err = Amortize(dec("-5"), dec("10"), 12)
	require.ErrorAs(t, err, &verr)

	_, err = Amortize(dec("1000"), dec("-1"), 12)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "annual rate", verr.Field)

	_, err = Amortize(dec("1000"), dec("10"), 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "term", verr.Field)

	_, err = Amortize(dec("1000"), dec("10"), maxTermMonths+1)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "term", verr.Field)
}

func TestAmortize_Deterministic(t *testing.T) {
	first, err := Amortize(dec("300000"), dec("11"), 48)
	require.NoError(t, err)
	second, err := Amortize(dec("300000"), dec("11"), 48)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
