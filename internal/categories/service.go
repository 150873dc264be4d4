// Package categories suggests a spending category for parsed transaction
// text using per-category keyword lists.
package categories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/venkatkrish78/finplanner-sub001/internal/model"
)

// fileConfig is the on-disk shape of categories.yaml.
type fileConfig struct {
	Categories []model.Category `yaml:"categories"`
}

// Service provides in-memory keyword lookup over the category list.
type Service struct {
	categories []model.Category
	byName     map[string]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(categories []model.Category) *Service {
	byName := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c
	}
	return &Service{categories: categories, byName: byName}
}

// Load reads categories.yaml from a project root and returns a Service.
func Load(root string) (*Service, error) {
	data, err := os.ReadFile(filepath.Join(root, "categories.yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	return NewService(cfg.Categories), nil
}

// Save writes the category list to <root>/categories.yaml.
func (s *Service) Save(root string) error {
	data, err := yaml.Marshal(fileConfig{Categories: s.categories})
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "categories.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// All returns all categories.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by name (case-insensitive).
func (s *Service) Get(name string) (model.Category, bool) {
	c, ok := s.byName[strings.ToLower(name)]
	return c, ok
}

// Suggest returns the category whose keyword matches the transaction text.
// Merchant and description are searched together; when several keywords
// match, the longest wins so "electricity bill" beats "bill". Returns false
// when nothing matches.
func (s *Service) Suggest(description, merchant string) (string, bool) {
	haystack := strings.ToLower(description + " " + merchant)

	bestLen := 0
	var best string
	for _, c := range s.categories {
		for _, kw := range c.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" || !strings.Contains(haystack, kw) {
				continue
			}
			if len(kw) > bestLen {
				bestLen = len(kw)
				best = c.Name
			}
		}
	}
	return best, bestLen > 0
}
