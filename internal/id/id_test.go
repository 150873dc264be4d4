package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2025-01-001", Format(2025, 1, 1))
	assert.Equal(t, "2025-12-042", Format(2025, 12, 42))
}

func TestParse(t *testing.T) {
	year, month, seq, err := Parse("2025-01-001")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 1, seq)
}

func TestParse_RoundTrip(t *testing.T) {
	year, month, seq, err := Parse(Format(2024, 7, 113))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
	assert.Equal(t, 113, seq)
}

func TestParse_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2025", "2025-01", "year-mo-seq"} {
		_, _, _, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}
