package bills

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// billYAML is the on-disk shape of one bill. Amounts are strings so no
// precision is lost through YAML's float handling.
type billYAML struct {
	Name      string    `yaml:"name"`
	Amount    string    `yaml:"amount"`
	Every     string    `yaml:"every"`
	DueDay    int       `yaml:"due_day,omitempty"`
	FirstDue  time.Time `yaml:"first_due,omitempty"`
	AutoDebit bool      `yaml:"auto_debit,omitempty"`
}

// fileConfig is the on-disk shape of bills.yaml.
type fileConfig struct {
	Bills []billYAML `yaml:"bills"`
}

// Load reads bills.yaml from a project root. A missing file is an empty
// bill list, not an error.
func Load(root string) ([]model.Bill, error) {
	data, err := os.ReadFile(filepath.Join(root, "bills.yaml"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading bills: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing bills: %w", err)
	}

	billList := make([]model.Bill, 0, len(cfg.Bills))
	for _, raw := range cfg.Bills {
		amount, err := decimal.NewFromString(raw.Amount)
		if err != nil {
			return nil, fmt.Errorf("bill %q: parsing amount %q: %w", raw.Name, raw.Amount, err)
		}
		b := model.Bill{
			Name:      raw.Name,
			Amount:    amount,
			Every:     model.Frequency(raw.Every),
			DueDay:    raw.DueDay,
			FirstDue:  raw.FirstDue,
			AutoDebit: raw.AutoDebit,
		}
		if err := Validate(b); err != nil {
			return nil, err
		}
		billList = append(billList, b)
	}
	return billList, nil
}

// Save writes the bill list to <root>/bills.yaml.
func Save(root string, billList []model.Bill) error {
	cfg := fileConfig{Bills: make([]billYAML, 0, len(billList))}
	for _, b := range billList {
		cfg.Bills = append(cfg.Bills, billYAML{
			Name:      b.Name,
			Amount:    b.Amount.String(),
			Every:     string(b.Every),
			DueDay:    b.DueDay,
			FirstDue:  b.FirstDue,
			AutoDebit: b.AutoDebit,
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling bills: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "bills.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing bills: %w", err)
	}
	return nil
}
