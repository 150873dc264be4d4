// Package smsparser turns bank and UPI notification text into structured
// transactions. Notification formats are undocumented and drift between
// banks, so each field has its own best-effort extractor: only the amount is
// mandatory, everything else degrades to absent when a message doesn't carry
// it. Platform profiles let a bank override individual patterns without
// touching the rest of the pipeline.
package smsparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// ErrNoAmount is returned when no monetary amount can be found in the
// message. It is the only fatal parse failure.
var ErrNoAmount = errors.New("no amount found in message")

// descriptionTokens is how many leading words survive into a synthesized
// description when neither merchant nor platform was identified.
const descriptionTokens = 10

// Parser extracts transactions from notification text.
type Parser struct {
	profiles *Registry
	now      func() time.Time
}

// New creates a Parser over the given profiles. A nil registry uses the
// built-in platform table.
func New(profiles *Registry) *Parser {
	if profiles == nil {
		profiles = DefaultRegistry()
	}
	return &Parser{profiles: profiles, now: time.Now}
}

// WithClock returns a copy of the parser using the given clock for the
// timestamp fallback.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	return &Parser{profiles: p.profiles, now: now}
}

var defaultParser = New(nil)

// Parse runs the default parser over text.
func Parse(text string) (model.ParsedTransaction, error) {
	return defaultParser.Parse(text)
}

// Parse extracts a transaction from one notification message. Malformed or
// adversarial input never panics out of this method; any internal fault is
// converted into a parse failure.
func (p *Parser) Parse(text string) (txn model.ParsedTransaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			txn = model.ParsedTransaction{}
			err = fmt.Errorf("parse fault: %v: %w", r, ErrNoAmount)
		}
	}()

	profile := p.profiles.Identify(text)

	amount, ok := extractAmount(text, profile)
	if !ok {
		return model.ParsedTransaction{}, ErrNoAmount
	}

	txn = model.ParsedTransaction{
		Amount:        amount,
		Direction:     extractDirection(text),
		Merchant:      extractMerchant(text),
		AccountSuffix: extractSuffix(text, profile),
		Reference:     extractReference(text),
		BalanceAfter:  extractBalance(text, profile),
		Status:        extractStatus(text),
	}
	if profile != nil {
		txn.Platform = profile.Name
	}

	txn.OccurredAt = extractTimestamp(text)
	if txn.OccurredAt.IsZero() {
		// Deliberate fallback: an unreadable date is not a parse failure.
		txn.OccurredAt = p.now()
	}

	txn.Description = synthesizeDescription(text, txn.Merchant, txn.Platform)
	return txn, nil
}

// synthesizeDescription builds a human summary from whatever was extracted,
// falling back to the leading words of the raw message.
func synthesizeDescription(text, merchant, platform string) string {
	if merchant != "" {
		return "Payment to " + merchant
	}
	if platform != "" {
		return platform + " transaction"
	}

	words := strings.Fields(text)
	if len(words) <= descriptionTokens {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:descriptionTokens], " ") + "..."
}
