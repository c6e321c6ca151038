package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a payment extracted from a provider notification message.
type Transaction struct {
	ReferenceID string          // dedup key; extracted, or synthesized when absent
	OccurredAt  time.Time       // calendar date of the payment
	Amount      decimal.Decimal // always positive, major units
	Merchant    string          // cleaned display name
	Category    string          // assigned after parsing, "" until then
	Description string
	UPIHandle   string // optional name@provider token, "" if none
	Bank        string // label of the dialect rule that matched
	RawMessage  string // original input, verbatim
}

// CategoryStat is the per-category aggregate used by reports.
type CategoryStat struct {
	Category string
	Amount   decimal.Decimal
	Count    int
}

// MonthTotal is one point of a monthly spend trend.
type MonthTotal struct {
	Month  string // "Jan 2006"
	Amount decimal.Decimal
}
