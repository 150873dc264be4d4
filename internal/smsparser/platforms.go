package smsparser

import (
	"regexp"
	"strings"
)

// Profile describes one known bank or UPI app. Aliases identify the platform
// in message text; the optional patterns override the universal extractors
// for formats the platform is known to deviate on.
type Profile struct {
	Name    string
	Aliases []string

	// Optional overrides, tried before the universal patterns. The first
	// capture group must hold the numeric value.
	AmountPattern  *regexp.Regexp
	SuffixPattern  *regexp.Regexp
	BalancePattern *regexp.Regexp
}

// Registry holds platform profiles in identification order.
type Registry struct {
	profiles []Profile
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a profile. Panics on duplicate name.
func (r *Registry) Register(p Profile) {
	for _, existing := range r.profiles {
		if strings.EqualFold(existing.Name, p.Name) {
			panic("duplicate platform profile: " + p.Name)
		}
	}
	r.profiles = append(r.profiles, p)
}

// identifyWindow is how far into the message an alias must appear. Bank
// notifications lead with the sender name; a merchant mentioned later in the
// body must not be mistaken for the platform.
const identifyWindow = 48

// Identify returns the profile whose alias appears earliest in the leading
// portion of text, or nil when no platform is recognized.
func (r *Registry) Identify(text string) *Profile {
	window := strings.ToLower(text)
	if len(window) > identifyWindow {
		window = window[:identifyWindow]
	}

	best := -1
	var found *Profile
	for i := range r.profiles {
		for _, alias := range r.profiles[i].Aliases {
			pos := strings.Index(window, strings.ToLower(alias))
			if pos >= 0 && (best < 0 || pos < best) {
				best = pos
				found = &r.profiles[i]
			}
		}
	}
	return found
}

// DefaultRegistry returns a registry with all built-in platform profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Profile{Name: "HDFC Bank", Aliases: []string{"hdfc"}})
	r.Register(Profile{Name: "ICICI Bank", Aliases: []string{"icici"}})
	r.Register(Profile{Name: "State Bank of India", Aliases: []string{"sbi", "sbiinb"}})
	r.Register(Profile{Name: "Axis Bank", Aliases: []string{"axis bank", "axisbk"}})
	r.Register(Profile{Name: "Kotak Bank", Aliases: []string{"kotak"}})
	r.Register(Profile{Name: "Punjab National Bank", Aliases: []string{"pnb"}})
	r.Register(Profile{
		Name:    "Paytm",
		Aliases: []string{"paytm"},
		// Paytm wallet alerts omit the currency marker: "Paid 250 to ...".
		AmountPattern: regexp.MustCompile(`(?i)\bpaid\s+(?:rs\.?\s*|inr\s*|₹\s*)?([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]{1,2})?)\b`),
	})
	r.Register(Profile{
		Name:    "PhonePe",
		Aliases: []string{"phonepe"},
	})
	r.Register(Profile{
		Name:    "Google Pay",
		Aliases: []string{"google pay", "gpay"},
	})
	r.Register(Profile{Name: "Amazon Pay", Aliases: []string{"amazon pay"}})
	r.Register(Profile{Name: "BHIM", Aliases: []string{"bhim"}})
	return r
}
