package model

// Category groups transactions for reporting and carries the keyword list
// used to suggest it from parsed descriptions.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
