package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies the money flow of a transaction.
type Direction string

const (
	DirectionIncome   Direction = "income"
	DirectionExpense  Direction = "expense"
	DirectionTransfer Direction = "transfer"
)

// KnownDirection reports whether d is one of the defined directions.
func KnownDirection(d Direction) bool {
	switch d {
	case DirectionIncome, DirectionExpense, DirectionTransfer:
		return true
	}
	return false
}

// TxnStatus represents the settlement state reported in a notification.
type TxnStatus string

const (
	StatusSuccess TxnStatus = "success"
	StatusFailed  TxnStatus = "failed"
	StatusPending TxnStatus = "pending"
)

// KnownStatus reports whether s is one of the defined statuses.
func KnownStatus(s TxnStatus) bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPending:
		return true
	}
	return false
}

// ParsedTransaction is the structured result of parsing one bank/UPI
// notification. Amount is the only field the parser guarantees; everything
// else is best-effort and may be zero-valued.
type ParsedTransaction struct {
	Amount        decimal.Decimal // always positive
	Direction     Direction
	Description   string
	Merchant      string
	AccountSuffix string // last 4-6 digits of the account, if found
	Reference     string // bank/UPI transaction reference, if found
	OccurredAt    time.Time
	BalanceAfter  *decimal.Decimal // nil when the message carries no balance
	Status        TxnStatus
	Platform      string // identified bank/app name, if any
}
