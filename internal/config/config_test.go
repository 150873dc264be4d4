package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "INR", cfg.Currency.Code)
	assert.Equal(t, 2, cfg.Currency.MinorUnits)
	assert.True(t, cfg.Parser.PlatformHints)
	assert.True(t, cfg.Ledger.AutoCategorize)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplanner.yaml")

	original := Default()
	original.Currency.Code = "USD"
	original.Ledger.FlagAmount = 10000
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplanner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
