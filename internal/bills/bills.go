// Package bills expands recurring bill definitions into concrete due dates.
package bills

import (
	"fmt"
	"time"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// maxInstances bounds instance generation for a single bill so an absurd
// window cannot allocate without limit.
const maxInstances = 1200

// Validate checks that a bill definition is well formed.
func Validate(b model.Bill) error {
	if b.Name == "" {
		return fmt.Errorf("bill name is required")
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("bill %q: amount must be positive", b.Name)
	}
	if !model.KnownFrequency(b.Every) {
		return fmt.Errorf("bill %q: unknown frequency %q", b.Name, b.Every)
	}
	if b.Every == model.FrequencyMonthly {
		if b.DueDay < 1 || b.DueDay > 31 {
			return fmt.Errorf("bill %q: due day %d out of range 1-31", b.Name, b.DueDay)
		}
	} else if b.FirstDue.IsZero() {
		return fmt.Errorf("bill %q: %s bills need a first_due anchor", b.Name, b.Every)
	}
	return nil
}

// Instances generates the due dates for a bill falling inside [from, until],
// in order. Generation stops after maxInstances dates.
func Instances(b model.Bill, from, until time.Time) ([]model.BillInstance, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	if until.Before(from) {
		return nil, fmt.Errorf("bill %q: window end before start", b.Name)
	}

	var out []model.BillInstance
	for due := firstOnOrAfter(b, from); !due.After(until); due = next(b, due) {
		out = append(out, model.BillInstance{Bill: b.Name, Amount: b.Amount, DueDate: due})
		if len(out) == maxInstances {
			break
		}
	}
	return out, nil
}

// NextDue returns the first due date strictly after the given time.
func NextDue(b model.Bill, after time.Time) (time.Time, error) {
	if err := Validate(b); err != nil {
		return time.Time{}, err
	}
	due := firstOnOrAfter(b, after)
	if !due.After(after) {
		due = next(b, due)
	}
	return due, nil
}

// Overdue returns an instance for every bill whose latest due date on or
// before asOf has arrived within the look-back window of one cycle. Bills on
// auto-debit are skipped.
func Overdue(billList []model.Bill, asOf time.Time) []model.BillInstance {
	var out []model.BillInstance
	for _, b := range billList {
		if b.AutoDebit || Validate(b) != nil {
			continue
		}
		prev := previousOnOrBefore(b, asOf)
		if prev.IsZero() {
			continue
		}
		out = append(out, model.BillInstance{Bill: b.Name, Amount: b.Amount, DueDate: prev})
	}
	return out
}

// firstOnOrAfter finds the earliest due date >= t.
func firstOnOrAfter(b model.Bill, t time.Time) time.Time {
	switch b.Every {
	case model.FrequencyMonthly:
		due := dayInMonth(t.Year(), t.Month(), b.DueDay)
		if due.Before(t) {
			nm := monthStart(t).AddDate(0, 1, 0)
			due = dayInMonth(nm.Year(), nm.Month(), b.DueDay)
		}
		return due
	case model.FrequencyWeekly:
		due := b.FirstDue
		if due.Before(t) {
			weeks := int(t.Sub(due) / (7 * 24 * time.Hour))
			due = due.AddDate(0, 0, weeks*7)
			for due.Before(t) {
				due = due.AddDate(0, 0, 7)
			}
		}
		return due
	default:
		// Quarterly and yearly step whole months from the anchor so the
		// anchor's day-of-month is preserved (clamped in short months).
		step := 3
		if b.Every == model.FrequencyYearly {
			step = 12
		}
		for k := 0; ; k += step {
			due := addMonthsClamped(b.FirstDue, k)
			if !due.Before(t) {
				return due
			}
		}
	}
}

// previousOnOrBefore finds the latest due date <= t, or zero when the cycle
// has not started yet.
func previousOnOrBefore(b model.Bill, t time.Time) time.Time {
	first := firstOnOrAfter(b, t)
	if first.Equal(t) {
		return first
	}

	switch b.Every {
	case model.FrequencyMonthly:
		prev := dayInMonth(t.Year(), t.Month(), b.DueDay)
		if prev.After(t) {
			back := monthStart(t).AddDate(0, -1, 0)
			prev = dayInMonth(back.Year(), back.Month(), b.DueDay)
		}
		return prev
	case model.FrequencyWeekly:
		if b.FirstDue.After(t) {
			return time.Time{}
		}
		due := b.FirstDue
		for !due.AddDate(0, 0, 7).After(t) {
			due = due.AddDate(0, 0, 7)
		}
		return due
	default:
		if b.FirstDue.After(t) {
			return time.Time{}
		}
		step := 3
		if b.Every == model.FrequencyYearly {
			step = 12
		}
		prev := b.FirstDue
		for k := step; ; k += step {
			due := addMonthsClamped(b.FirstDue, k)
			if due.After(t) {
				return prev
			}
			prev = due
		}
	}
}

// next advances one cycle from a known due date.
func next(b model.Bill, due time.Time) time.Time {
	switch b.Every {
	case model.FrequencyMonthly:
		nm := monthStart(due).AddDate(0, 1, 0)
		return dayInMonth(nm.Year(), nm.Month(), b.DueDay)
	case model.FrequencyWeekly:
		return due.AddDate(0, 0, 7)
	case model.FrequencyQuarterly:
		return nextFromAnchor(b.FirstDue, due, 3)
	default:
		return nextFromAnchor(b.FirstDue, due, 12)
	}
}

// nextFromAnchor returns the first anchor+k*step strictly after due.
func nextFromAnchor(anchor, due time.Time, step int) time.Time {
	for k := step; ; k += step {
		n := addMonthsClamped(anchor, k)
		if n.After(due) {
			return n
		}
	}
}

// monthStart truncates a date to the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// dayInMonth builds a date with the day clamped to the month's length, so a
// due day of 31 lands on Feb 28 (or 29).
func dayInMonth(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped adds months to a date, clamping the day instead of
// letting time.AddDate roll Jan 31 + 1 month into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	anchor := monthStart(t).AddDate(0, months, 0)
	return dayInMonth(anchor.Year(), anchor.Month(), t.Day())
}
