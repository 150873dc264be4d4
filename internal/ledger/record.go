package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// Record is one row in a month's transactions.csv: an accepted parser
// result plus the identity and category assigned at append time.
type Record struct {
	ID            string // "YYYY-MM-NNN"
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Direction     model.Direction
	Merchant      string
	AccountSuffix string
	Reference     string
	Balance       *decimal.Decimal // nil when the source message had none
	Status        model.TxnStatus
	Platform      string
	Category      string
}
