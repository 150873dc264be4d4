package fincalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGoalProjection_ByContribution(t *testing.T) {
	result, err := GoalProjection(GoalParams{
		Target:              dec("100000"),
		Current:             dec("20000"),
		MonthlyContribution: dec("5000"),
	}, goalNow)
	require.NoError(t, err)

	assert.Equal(t, 16, result.Months)
	assert.Equal(t, goalNow.AddDate(0, 16, 0), result.CompletionDate)
}

func TestGoalProjection_ContributionRoundsUp(t *testing.T) {
	// 80000 / 7000 = 11.43 months; a partial month is still a month.
	result, err := GoalProjection(GoalParams{
		Target:              dec("100000"),
		Current:             dec("20000"),
		MonthlyContribution: dec("7000"),
	}, goalNow)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Months)
}

func TestGoalProjection_ByDate(t *testing.T) {
	// 120 days out is exactly 4 thirty-day months.
	result, err := GoalProjection(GoalParams{
		Target:     dec("100000"),
		Current:    dec("20000"),
		TargetDate: goalNow.AddDate(0, 0, 120),
	}, goalNow)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Months)
	assert.True(t, result.RequiredMonthly.Equal(dec("20000")), "monthly %s", result.RequiredMonthly)
	assert.Equal(t, goalNow.AddDate(0, 0, 120), result.CompletionDate)
}

func TestGoalProjection_ImminentDateClampsToOneMonth(t *testing.T) {
	result, err := GoalProjection(GoalParams{
		Target:     dec("50000"),
		Current:    dec("0"),
		TargetDate: goalNow.AddDate(0, 0, 3),
	}, goalNow)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Months)
	assert.True(t, result.RequiredMonthly.Equal(dec("50000")))
}

func TestGoalProjection_AlreadyReached(t *testing.T) {
	result, err := GoalProjection(GoalParams{
		Target:              dec("10000"),
		Current:             dec("10000"),
		MonthlyContribution: dec("500"),
	}, goalNow)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Months)
	assert.True(t, result.RequiredMonthly.IsZero())
	assert.Equal(t, goalNow, result.CompletionDate)
}

func TestGoalProjection_NeitherInput(t *testing.T) {
	var verr *ValidationError
	_, err := GoalProjection(GoalParams{
		Target:  dec("10000"),
		Current: dec("1000"),
	}, goalNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "goal", verr.Field)
}

func TestGoalProjection_Validation(t *testing.T) {
	var verr *ValidationError

	_, err := GoalProjection(GoalParams{
		Target:              dec("0"),
		MonthlyContribution: dec("100"),
	}, goalNow)
	require.ErrorAs(t, err, &verr)

	_, err = GoalProjection(GoalParams{
		Target:              dec("1000"),
		Current:             dec("-1"),
		MonthlyContribution: dec("100"),
	}, goalNow)
	require.ErrorAs(t, err, &verr)
}
