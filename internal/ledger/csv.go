package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,description,amount,direction,merchant,account_suffix,reference,balance,status,platform,category"

const (
	numFields   = 12
	dateFormat  = time.RFC3339
	colID       = 0
	colDate     = 1
	colDesc     = 2
	colAmount   = 3
	colDir      = 4
	colMerchant = 5
	colSuffix   = 6
	colRef      = 7
	colBalance  = 8
	colStatus   = 9
	colPlatform = 10
	colCategory = 11
)

// ReadRecords reads all records from a transactions.csv reader.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records to a transactions.csv writer (including header).
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRecords appends records to an existing transactions.csv writer (no header).
func AppendRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec Record) []string {
	row := make([]string, numFields)
	row[colID] = rec.ID
	row[colDate] = rec.Date.Format(dateFormat)
	row[colDesc] = rec.Description
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colDir] = string(rec.Direction)
	row[colMerchant] = rec.Merchant
	row[colSuffix] = rec.AccountSuffix
	row[colRef] = rec.Reference

	if rec.Balance != nil {
		row[colBalance] = rec.Balance.StringFixed(2)
	}

	row[colStatus] = string(rec.Status)
	row[colPlatform] = rec.Platform
	row[colCategory] = rec.Category

	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (Record, error) {
	if len(row) != numFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	var balance *decimal.Decimal
	if row[colBalance] != "" {
		b, err := decimal.NewFromString(row[colBalance])
		if err != nil {
			return Record{}, fmt.Errorf("parsing balance %q: %w", row[colBalance], err)
		}
		balance = &b
	}

	return Record{
		ID:            row[colID],
		Date:          date,
		Description:   row[colDesc],
		Amount:        amount,
		Direction:     model.Direction(row[colDir]),
		Merchant:      row[colMerchant],
		AccountSuffix: row[colSuffix],
		Reference:     row[colRef],
		Balance:       balance,
		Status:        model.TxnStatus(row[colStatus]),
		Platform:      row[colPlatform],
		Category:      row[colCategory],
	}, nil
}
