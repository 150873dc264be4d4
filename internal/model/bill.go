package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring bill falls due.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// KnownFrequency reports whether f is one of the defined frequencies.
func KnownFrequency(f Frequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Bill is a recurring payment obligation as configured in bills.yaml.
type Bill struct {
	Name      string
	Amount    decimal.Decimal
	Every     Frequency
	DueDay    int       // day of month, monthly bills only
	FirstDue  time.Time // cycle anchor for weekly/quarterly/yearly
	AutoDebit bool
}

// BillInstance is one concrete due date generated from a Bill.
type BillInstance struct {
	Bill    string
	Amount  decimal.Decimal
	DueDate time.Time
}
