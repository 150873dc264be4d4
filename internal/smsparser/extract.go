package smsparser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// Universal field patterns. Platform profiles may override amount, suffix,
// and balance; the rest are shared across all known formats. Amount groups
// accept Indian-style separators (1,234.50 and 1,00,000 alike).
var (
	amountRe = regexp.MustCompile(`(?i)(?:rs\.?\s*|inr\s*|₹\s*)([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]{1,2})?)`)

	directionRe = regexp.MustCompile(`(?i)\b(debited|credited|transferred|paid|received)\b`)

	suffixRe = regexp.MustCompile(`(?i)(?:a/c|acc(?:oun)?t)(?:\s*no\.?)?\s*(?:ending(?:\s+in)?)?\s*[xX*]*([0-9]{4,6})\b`)

	referenceRe = regexp.MustCompile(`(?i)(?:txn\s*id|transaction\s*id|ref\s*no|upi\s*ref)\s*[:.]?\s*([A-Za-z0-9]+)`)

	balanceRe = regexp.MustCompile(`(?i)(?:avl\s*bal|available\s*balance|balance)\s*[-:]?\s*(?:rs\.?\s*|inr\s*|₹\s*)?([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]{1,2})?)`)

	statusRe = regexp.MustCompile(`(?i)status\s*[-:]?\s*(success|failed|pending)`)

	// Capitalized run after at/from/to; each word at least two letters so
	// fragments like the "A" in "A/c" never read as a counterparty.
	merchantRe = regexp.MustCompile(`\b(?:at|from|to)\s+([A-Z][A-Za-z&'-]+(?:\s+[A-Z][A-Za-z&'-]+)*)`)

	dateTimeRe = regexp.MustCompile(`\b([0-9]{2})-([0-9]{2})-([0-9]{2,4})\s+([0-9]{1,2}):([0-9]{2})(?::([0-9]{2}))?\b`)
	dateOnlyRe = regexp.MustCompile(`\b([0-9]{1,2})/([0-9]{1,2})/([0-9]{4})\b`)
	isoRe      = regexp.MustCompile(`\b[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(?:Z|[+-][0-9]{2}:[0-9]{2})?\b`)
)

// merchantStopWords end a merchant run; they are capitalized in real
// messages so the run pattern alone cannot exclude them.
var merchantStopWords = map[string]bool{
	"On":  true,
	"Txn": true,
	"UPI": true,
	"Ref": true,
	"Avl": true,
}

// extractAmount pulls the transaction amount, preferring the platform
// override when one exists. Thousands separators are stripped before
// decimal conversion.
func extractAmount(text string, profile *Profile) (decimal.Decimal, bool) {
	if profile != nil && profile.AmountPattern != nil {
		if amt, ok := matchAmount(profile.AmountPattern, text); ok {
			return amt, true
		}
	}
	return matchAmount(amountRe, text)
}

func matchAmount(re *regexp.Regexp, text string) (decimal.Decimal, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	amt, err := decimal.NewFromString(raw)
	if err != nil || !amt.IsPositive() {
		return decimal.Decimal{}, false
	}
	return amt, true
}

// extractDirection maps the earliest direction keyword in the text.
// Unlabeled alerts default to expense: the long tail of bank notifications
// is debit notices.
func extractDirection(text string) model.Direction {
	switch strings.ToLower(directionRe.FindString(text)) {
	case "credited", "received":
		return model.DirectionIncome
	case "transferred":
		return model.DirectionTransfer
	case "debited", "paid":
		return model.DirectionExpense
	}
	return model.DirectionExpense
}

func extractSuffix(text string, profile *Profile) string {
	if profile != nil && profile.SuffixPattern != nil {
		if m := profile.SuffixPattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	if m := suffixRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractReference(text string) string {
	if m := referenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractBalance(text string, profile *Profile) *decimal.Decimal {
	if profile != nil && profile.BalancePattern != nil {
		if bal, ok := matchAmount(profile.BalancePattern, text); ok {
			return &bal
		}
	}
	if bal, ok := matchAmount(balanceRe, text); ok {
		return &bal
	}
	return nil
}

// extractStatus reads an explicit status label; absence means success.
func extractStatus(text string) model.TxnStatus {
	m := statusRe.FindStringSubmatch(text)
	if m == nil {
		return model.StatusSuccess
	}
	switch strings.ToLower(m[1]) {
	case "failed":
		return model.StatusFailed
	case "pending":
		return model.StatusPending
	}
	return model.StatusSuccess
}

// extractTimestamp tries the known date layouts in order of specificity.
// Two-digit years are expanded into the 2000s. The zero time is returned
// when nothing matches; the caller substitutes its clock.
func extractTimestamp(text string) time.Time {
	if m := dateTimeRe.FindStringSubmatch(text); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if year < 100 {
			year += 2000
		}
		hour, minute, sec := atoi(m[4]), atoi(m[5]), 0
		if m[6] != "" {
			sec = atoi(m[6])
		}
		if ts, ok := civilTime(year, month, day, hour, minute, sec); ok {
			return ts
		}
	}

	if m := dateOnlyRe.FindStringSubmatch(text); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if ts, ok := civilTime(year, month, day, 0, 0, 0); ok {
			return ts
		}
	}

	if raw := isoRe.FindString(text); raw != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts
			}
		}
	}

	return time.Time{}
}

// civilTime builds a time.Time only when the components denote a real
// calendar date, rejecting regex matches like 99/99/2024.
func civilTime(year, month, day, hour, minute, sec int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	if ts.Day() != day || int(ts.Month()) != month {
		return time.Time{}, false
	}
	return ts, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// extractMerchant pulls a counterparty name, trimming trailing stop words
// and any terminating period.
func extractMerchant(text string) string {
	m := merchantRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	words := strings.Fields(m[1])
	for i, w := range words {
		if merchantStopWords[w] {
			words = words[:i]
			break
		}
	}
	return strings.TrimSuffix(strings.Join(words, " "), ".")
}
