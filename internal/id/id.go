// Package id formats ledger record identifiers.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns a record ID like "2025-01-001".
func Format(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Parse splits "2025-01-001" into year, month, seq.
func Parse(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid record ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in record ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in record ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in record ID %q: %w", id, err)
	}

	return year, month, seq, nil
}
