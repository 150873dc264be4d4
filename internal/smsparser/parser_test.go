package smsparser

import (
	"strings"
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

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParse_FullBankAlert(t *testing.T) {
	txn, err := Parse("Rs. 1,234.50 debited from A/c ending 4321 on 15-01-24 12:30:00. Avl Bal- INR 5000.00. Txn ID: ABC123XYZ")
	require.NoError(t, err)

	assert.True(t, txn.Amount.Equal(dec("1234.50")), "amount %s", txn.Amount)
	assert.Equal(t, model.DirectionExpense, txn.Direction)
	assert.Equal(t, "4321", txn.AccountSuffix)
	assert.Equal(t, "ABC123XYZ", txn.Reference)
	require.NotNil(t, txn.BalanceAfter)
	assert.True(t, txn.BalanceAfter.Equal(dec("5000.00")), "balance %s", txn.BalanceAfter)
	assert.Equal(t, time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC), txn.OccurredAt)
	assert.Equal(t, model.StatusSuccess, txn.Status)
}

func TestParse_NoAmount(t *testing.T) {
	for _, text := range []string{
		"",
		"random text with no numbers",
		"your OTP is not a currency value",
	} {
		_, err := Parse(text)
		require.ErrorIs(t, err, ErrNoAmount, "text %q", text)
	}
}

func TestParse_DirectionKeywords(t *testing.T) {
	tests := []struct {
		text string
		want model.Direction
	}{
		{"Rs. 500 credited to your account", model.DirectionIncome},
		{"Rs. 500 received from John", model.DirectionIncome},
		{"Rs. 500 debited from your account", model.DirectionExpense},
		{"Paid Rs. 500 via UPI", model.DirectionExpense},
		{"Rs. 500 transferred to savings", model.DirectionTransfer},
		{"Rs. 500 spent somewhere", model.DirectionExpense}, // no keyword, default
	}
	for _, tt := range tests {
		txn, err := Parse(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, txn.Direction, tt.text)
	}
}

func TestParse_TimestampFallsBackToClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	p := New(nil).WithClock(fixedClock(now))

	txn, err := p.Parse("Rs. 250 debited via UPI")
	require.NoError(t, err)
	assert.Equal(t, now, txn.OccurredAt)
}

func TestParse_PlatformIdentified(t *testing.T) {
	txn, err := Parse("HDFC Bank: Rs. 900.00 debited from A/c XX1234")
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank", txn.Platform)
	assert.Equal(t, "1234", txn.AccountSuffix)
	assert.Equal(t, "HDFC Bank transaction", txn.Description)
}

func TestParse_PlatformAmountOverride(t *testing.T) {
	// Paytm wallet alerts carry no currency marker before the amount.
	txn, err := Parse("Paytm: Paid 250 to Coffee House Txn ID: PT9981")
	require.NoError(t, err)
	assert.Equal(t, "Paytm", txn.Platform)
	assert.True(t, txn.Amount.Equal(dec("250")), "amount %s", txn.Amount)
	assert.Equal(t, "Coffee House", txn.Merchant)
	assert.Equal(t, "Payment to Coffee House", txn.Description)
}

func TestParse_StatusLabel(t *testing.T) {
	txn, err := Parse("Rs. 100 debited. Status: Failed")
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, txn.Status)

	txn, err = Parse("Rs. 100 debited. Status: Pending")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, txn.Status)
}

func TestParse_DescriptionFallsBackToLeadingWords(t *testing.T) {
	text := "Dear customer an amount of Rs. 75 was taken from wallet balance today morning"
	txn, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "Dear customer an amount of Rs. 75 was taken from...", txn.Description)

	short := "Rs. 75 gone"
	txn, err = Parse(short)
	require.NoError(t, err)
	assert.Equal(t, short, txn.Description)
}

func TestParse_AdversarialInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		strings.Repeat("Rs. 1 ", 10000),
		"Rs. 9999999999999999999999999999.99 debited",
		"\x00\xff\xfeRs. 10 debited\x00",
		"Rs. debited from A/c ending on Txn ID:",
	}
	for _, text := range inputs {
		require.NotPanics(t, func() {
			_, _ = Parse(text) //nolint:errcheck // only panic safety matters here
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 3, 3, 3, 3, 0, time.UTC)
	p := New(nil).WithClock(fixedClock(now))
	text := "ICICI Bank: Rs. 2,000 credited to A/c XX8844 on 01-02-25 10:00"

	first, err := p.Parse(text)
	require.NoError(t, err)
	second, err := p.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
