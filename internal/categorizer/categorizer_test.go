package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_KeywordLookup(t *testing.T) {
	c := New()

	tests := []struct {
		description string
		merchant    string
		want        string
	}{
		{"Payment to SWIGGY", "SWIGGY", "Food"},
		{"Payment to BIGBASKET", "BIGBASKET", "Groceries"},
		{"Payment to BSES DELHI", "BSES DELHI", "Electricity"},
		{"Payment to AIRTEL", "AIRTEL", "Utilities"},
		{"Payment to INDIAN OIL PETROL PUMP", "INDIAN OIL PETROL PUMP", "Transportation"},
		{"Payment to NETFLIX", "NETFLIX", "Entertainment"},
		{"Payment to MYNTRA", "MYNTRA", "Shopping"},
		{"Payment to APOLLO PHARMACY", "APOLLO PHARMACY", "Healthcare"},
		{"Payment to CROMA", "CROMA", "Electronics"},
		{"Payment to SOME UNKNOWN SHOP", "SOME UNKNOWN SHOP", Fallback},
		{"", "", Fallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Categorize(tt.description, tt.merchant), "merchant: %s", tt.merchant)
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	c := New()
	assert.Equal(t, "Food", c.Categorize("payment", "Zomato"))
	assert.Equal(t, "Food", c.Categorize("PAYMENT", "ZOMATO"))
}

func TestCategorize_FirstRuleWins(t *testing.T) {
	c := New()

	// "mobile" appears under both Utilities and Electronics; the earlier
	// table entry decides.
	assert.Equal(t, "Utilities", c.Categorize("mobile recharge", "SOMETELCO"))
}

func TestCategorize_DescriptionAloneCanMatch(t *testing.T) {
	c := New()
	assert.Equal(t, "Food", c.Categorize("restaurant bill", "XYZ"))
}

func TestNewWithRules(t *testing.T) {
	c := NewWithRules([]Rule{{Name: "Coffee", Keywords: []string{"espresso"}}})
	assert.Equal(t, "Coffee", c.Categorize("double espresso", ""))
	assert.Equal(t, Fallback, c.Categorize("payment", "SWIGGY"))

	// Empty table means the default one.
	c = NewWithRules(nil)
	assert.Equal(t, "Food", c.Categorize("", "swiggy"))
}
