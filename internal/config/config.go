package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level finplanner.yaml configuration.
type Config struct {
	Currency CurrencyConfig `yaml:"currency"`
	Parser   ParserConfig   `yaml:"parser"`
	Ledger   LedgerConfig   `yaml:"ledger"`
}

// CurrencyConfig describes the display currency.
type CurrencyConfig struct {
	Code       string `yaml:"code"`
	Symbol     string `yaml:"symbol"`
	MinorUnits int    `yaml:"minor_units"`
}

// ParserConfig controls message parsing behavior.
type ParserConfig struct {
	PlatformHints bool `yaml:"platform_hints"` // use platform-specific patterns
	AuditLog      bool `yaml:"audit_log"`      // record attempts in logs/parse-log.csv
}

// LedgerConfig controls transaction storage.
type LedgerConfig struct {
	FlagAmount     float64 `yaml:"flag_amount"` // report transactions at or above this
	AutoCategorize bool    `yaml:"auto_categorize"`
}

// Load reads a finplanner.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Currency: CurrencyConfig{
			Code:       "INR",
			Symbol:     "₹",
			MinorUnits: 2,
		},
		Parser: ParserConfig{
			PlatformHints: true,
			AuditLog:      true,
		},
		Ledger: LedgerConfig{
			FlagAmount:     50000,
			AutoCategorize: true,
		},
	}
}
