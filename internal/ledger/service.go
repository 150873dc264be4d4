// Package ledger stores accepted transactions as plain CSV files, one per
// month under <root>/YYYY/MM/transactions.csv.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/venkatkrish78/finplanner-sub001/internal/id"
	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// Service provides append/read access over the ledger files.
type Service struct {
	root string
}

// NewService creates a ledger Service rooted at dir.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Append validates a parsed transaction and appends it to the month file for
// its date, creating the file and header when the month is new. Transactions
// without a bank reference get a generated UUID so every stored row is
// addressable. Returns the assigned record ID.
func (s *Service) Append(txn model.ParsedTransaction, category string) (string, error) {
	year := txn.OccurredAt.Year()
	month := int(txn.OccurredAt.Month())

	seq, err := s.NextSeq(year, month)
	if err != nil {
		return "", err
	}

	rec := Record{
		ID:            id.Format(year, month, seq),
		Date:          txn.OccurredAt,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Direction:     txn.Direction,
		Merchant:      txn.Merchant,
		AccountSuffix: txn.AccountSuffix,
		Reference:     txn.Reference,
		Balance:       txn.BalanceAfter,
		Status:        txn.Status,
		Platform:      txn.Platform,
		Category:      category,
	}
	if rec.Reference == "" {
		rec.Reference = uuid.NewString()
	}

	if verrs := ValidateRecord(rec); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRecords(f, []Record{rec}); err != nil {
		return "", fmt.Errorf("appending record: %w", err)
	}

	return rec.ID, nil
}

// ReadMonth reads all records for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]Record, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return records, nil
}

// NextSeq returns the next available sequence number for a month.
func (s *Service) NextSeq(year, month int) (int, error) {
	records, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, rec := range records {
		_, _, seq, err := id.Parse(rec.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "transactions.csv")
}
