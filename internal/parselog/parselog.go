// Package parselog keeps an append-only audit trail of parse attempts so
// rejected messages can be reviewed and new bank formats spotted.
package parselog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Outcome labels the result of one parse attempt.
type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomeNoAmount Outcome = "no-amount"
)

// Entry is one row in the parse log.
type Entry struct {
	Timestamp time.Time
	Platform  string
	Outcome   Outcome
	Amount    string // formatted, empty on failure
	Reference string
	Message   string // leading part of the raw text
}

// Header is the CSV header for parse-log.csv.
const Header = "timestamp,platform,outcome,amount,reference,message"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/parse-log.csv"
	messageLimit = 80
	colTimestamp = 0
	colPlatform  = 1
	colOutcome   = 2
	colAmount    = 3
	colReference = 4
	colMessage   = 5
)

// Truncate shortens raw message text for the Message column.
func Truncate(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > messageLimit {
		return text[:messageLimit]
	}
	return text
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colPlatform] = e.Platform
	row[colOutcome] = string(e.Outcome)
	row[colAmount] = e.Amount
	row[colReference] = e.Reference
	row[colMessage] = e.Message
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Platform:  record[colPlatform],
		Outcome:   Outcome(record[colOutcome]),
		Amount:    record[colAmount],
		Reference: record[colReference],
		Message:   record[colMessage],
	}, nil
}

// Append writes entries to <root>/logs/parse-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening parse log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing parse log entry: %w", err)
		}
	}
	return cw.Error()
}

// Read returns all entries from <root>/logs/parse-log.csv. A missing log is
// an empty slice, not an error.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening parse log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading parse log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
