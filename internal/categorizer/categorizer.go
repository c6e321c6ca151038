// Package categorizer assigns spending categories by keyword lookup over an
// ordered rule table. Matching is deterministic: first rule with any keyword
// present wins, same tie-break as the parser's dialect table.
package categorizer

import "strings"

// Fallback is returned when no rule keyword is present.
const Fallback = "Others"

// Rule maps a category name to the substrings that select it.
type Rule struct {
	Name     string
	Keywords []string
}

// DefaultRules is the built-in table, in priority order.
var DefaultRules = []Rule{
	{"Food", []string{"swiggy", "zomato", "restaurant", "food", "cafe", "starbucks", "mcdonald", "kfc", "domino"}},
	{"Groceries", []string{"bigbasket", "grofers", "blinkit", "grocery", "supermarket", "dmart"}},
	{"Electricity", []string{"bses", "bescom", "kseb", "mseb", "electricity", "power", "energy"}},
	{"Utilities", []string{"airtel", "jio", "vodafone", "bsnl", "telecom", "mobile", "broadband", "wifi"}},
	{"Transportation", []string{"uber", "ola", "metro", "bus", "train", "petrol", "diesel", "fuel"}},
	{"Entertainment", []string{"bookmyshow", "netflix", "amazon prime", "hotstar", "spotify", "cinema"}},
	{"Shopping", []string{"amazon", "flipkart", "myntra", "ajio", "shopping", "mall"}},
	{"Healthcare", []string{"apollo", "pharmacy", "hospital", "medical", "doctor", "medicine"}},
	{"Electronics", []string{"croma", "reliance digital", "electronics", "mobile", "laptop"}},
}

// Categorizer resolves categories against a rule table.
type Categorizer struct {
	rules []Rule
}

// New returns a Categorizer over the default table.
func New() *Categorizer {
	return NewWithRules(DefaultRules)
}

// NewWithRules returns a Categorizer over a custom table, preserving its
// order. An empty table falls back to the default.
func NewWithRules(rules []Rule) *Categorizer {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Categorizer{rules: rules}
}

// Categorize returns the category for a transaction's description and
// merchant name, or Fallback when nothing matches.
func (c *Categorizer) Categorize(description, merchant string) string {
	text := strings.ToLower(description + " " + merchant)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Name
			}
		}
	}
	return Fallback
}
