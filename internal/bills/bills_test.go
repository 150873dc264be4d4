package bills

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthlyBill(dueDay int) model.Bill {
	return model.Bill{Name: "Rent", Amount: dec("15000"), Every: model.FrequencyMonthly, DueDay: dueDay}
}

func TestInstances_Monthly(t *testing.T) {
	got, err := Instances(monthlyBill(5), date(2025, time.January, 1), date(2025, time.March, 31))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, date(2025, time.January, 5), got[0].DueDate)
	assert.Equal(t, date(2025, time.February, 5), got[1].DueDate)
	assert.Equal(t, date(2025, time.March, 5), got[2].DueDate)
	assert.Equal(t, "Rent", got[0].Bill)
	assert.True(t, got[0].Amount.Equal(dec("15000")))
}

func TestInstances_MonthlyDayClampedToShortMonth(t *testing.T) {
	got, err := Instances(monthlyBill(31), date(2025, time.January, 1), date(2025, time.April, 30))
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, date(2025, time.January, 31), got[0].DueDate)
	assert.Equal(t, date(2025, time.February, 28), got[1].DueDate)
	assert.Equal(t, date(2025, time.March, 31), got[2].DueDate)
	assert.Equal(t, date(2025, time.April, 30), got[3].DueDate)
}

func TestInstances_Weekly(t *testing.T) {
	b := model.Bill{
		Name:     "Cleaner",
		Amount:   dec("800"),
		Every:    model.FrequencyWeekly,
		FirstDue: date(2025, time.January, 6), // a Monday
	}

	got, err := Instances(b, date(2025, time.January, 10), date(2025, time.January, 31))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, date(2025, time.January, 13), got[0].DueDate)
	assert.Equal(t, date(2025, time.January, 20), got[1].DueDate)
	assert.Equal(t, date(2025, time.January, 27), got[2].DueDate)
}

func TestInstances_QuarterlyKeepsAnchorDay(t *testing.T) {
	b := model.Bill{
		Name:     "Insurance",
		Amount:   dec("4500"),
		Every:    model.FrequencyQuarterly,
		FirstDue: date(2024, time.November, 30),
	}

	got, err := Instances(b, date(2025, time.January, 1), date(2025, time.December, 31))
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, date(2025, time.February, 28), got[0].DueDate)
	assert.Equal(t, date(2025, time.May, 30), got[1].DueDate)
	assert.Equal(t, date(2025, time.August, 30), got[2].DueDate)
	assert.Equal(t, date(2025, time.November, 30), got[3].DueDate)
}

func TestInstances_Yearly(t *testing.T) {
	b := model.Bill{
		Name:     "Domain",
		Amount:   dec("1200"),
		Every:    model.FrequencyYearly,
		FirstDue: date(2023, time.June, 15),
	}

	got, err := Instances(b, date(2025, time.January, 1), date(2026, time.December, 31))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, date(2025, time.June, 15), got[0].DueDate)
	assert.Equal(t, date(2026, time.June, 15), got[1].DueDate)
}

func TestInstances_EmptyWindow(t *testing.T) {
	got, err := Instances(monthlyBill(5), date(2025, time.January, 6), date(2025, time.January, 20))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInstances_WindowEndBeforeStart(t *testing.T) {
	_, err := Instances(monthlyBill(5), date(2025, time.February, 1), date(2025, time.January, 1))
	require.Error(t, err)
}

func TestNextDue(t *testing.T) {
	next, err := NextDue(monthlyBill(5), date(2025, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 5), next, "a due date today is not the next one")

	next, err = NextDue(monthlyBill(5), date(2025, time.January, 2))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 5), next)
}

func TestOverdue(t *testing.T) {
	auto := monthlyBill(5)
	auto.Name = "Autopay"
	auto.AutoDebit = true

	got := Overdue([]model.Bill{monthlyBill(5), auto}, date(2025, time.January, 20))
	require.Len(t, got, 1, "auto-debit bills are never overdue")
	assert.Equal(t, "Rent", got[0].Bill)
	assert.Equal(t, date(2025, time.January, 5), got[0].DueDate)
}

func TestOverdue_BeforeCycleStart(t *testing.T) {
	b := model.Bill{
		Name:     "Insurance",
		Amount:   dec("4500"),
		Every:    model.FrequencyQuarterly,
		FirstDue: date(2025, time.June, 1),
	}
	assert.Empty(t, Overdue([]model.Bill{b}, date(2025, time.January, 1)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Bill)
	}{
		{"empty name", func(b *model.Bill) { b.Name = "" }},
		{"zero amount", func(b *model.Bill) { b.Amount = dec("0") }},
		{"unknown frequency", func(b *model.Bill) { b.Every = "fortnightly" }},
		{"due day zero", func(b *model.Bill) { b.DueDay = 0 }},
		{"due day out of range", func(b *model.Bill) { b.DueDay = 32 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := monthlyBill(5)
			tt.mutate(&b)
			assert.Error(t, Validate(b))
		})
	}
}
