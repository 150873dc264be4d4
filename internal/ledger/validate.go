package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// ValidationError describes a single rejected record field.
type ValidationError struct {
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s]: %s", e.RecordID, e.Description)
}

// ValidateRecord enforces the row invariants before anything reaches disk.
func ValidateRecord(rec Record) []ValidationError {
	var errs []ValidationError

	if !rec.Amount.IsPositive() {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: fmt.Sprintf("amount %s must be positive", rec.Amount),
		})
	}

	if !model.KnownDirection(rec.Direction) {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: fmt.Sprintf("unknown direction %q", rec.Direction),
		})
	}

	if !model.KnownStatus(rec.Status) {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: fmt.Sprintf("unknown status %q", rec.Status),
		})
	}

	if rec.Date.IsZero() {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: "date is required",
		})
	}

	// No more than 2 decimal places on stored money.
	hundred := decimal.NewFromInt(100)
	if !rec.Amount.Mul(hundred).Equal(rec.Amount.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: fmt.Sprintf("amount %s has more than 2 decimal places", rec.Amount),
		})
	}
	if rec.Balance != nil && !rec.Balance.Mul(hundred).Equal(rec.Balance.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{
			RecordID:    rec.ID,
			Description: fmt.Sprintf("balance %s has more than 2 decimal places", rec.Balance),
		})
	}

	return errs
}
