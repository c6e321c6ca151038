// Package sms extracts structured payment transactions from bank and
// payment-app notification text. Matching runs over a fixed, ordered dialect
// table; extraction either yields a complete record or nothing — malformed
// input is never an error, just not a transaction.
package sms

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/upitrail/upitrail/internal/id"
	"github.com/upitrail/upitrail/internal/model"
)

var (
	// name@provider tokens, scanned over the whole message regardless of
	// which dialect matched.
	handleRe = regexp.MustCompile(`\w+@\w+`)

	// anything outside letters, digits, whitespace and hyphen is dropped
	// from merchant names.
	merchantJunkRe = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
)

// Parser applies the dialect rule table to raw message text. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	rules []Rule

	// Now supplies "current date" for messages without a parseable date.
	// Overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewParser returns a Parser over the built-in dialect table.
func NewParser() *Parser {
	return &Parser{rules: Rules, Now: time.Now}
}

// Normalize collapses all whitespace runs, including newlines, to single
// spaces and trims the ends. All rule matching operates on this form.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ParseOne extracts a transaction from a single raw message. The second
// return is false when no dialect matched or a required field (positive
// amount, non-empty merchant) could not be produced; a partial record is
// never returned.
func (p *Parser) ParseOne(text string) (model.Transaction, bool) {
	clean := Normalize(text)

	for _, rule := range p.rules {
		if rule.Exclude != nil && rule.Exclude.MatchString(clean) {
			continue
		}
		m := rule.Pattern.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		// First match wins; if its fields don't survive extraction the
		// message yields nothing rather than falling through to a later,
		// less specific rule.
		return p.extract(rule, m, clean, text)
	}

	return model.Transaction{}, false
}

// ParseBatch applies ParseOne to each message in order, drops non-matches,
// dedups by reference id (first occurrence in input order wins outright) and
// returns the result newest first. Ties on date keep their relative input
// order.
func (p *Parser) ParseBatch(texts []string) []model.Transaction {
	var txns []model.Transaction
	seen := make(map[string]bool)

	for _, text := range texts {
		tx, ok := p.ParseOne(text)
		if !ok {
			continue
		}
		if seen[tx.ReferenceID] {
			continue
		}
		seen[tx.ReferenceID] = true
		txns = append(txns, tx)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].OccurredAt.After(txns[j].OccurredAt)
	})
	return txns
}

func (p *Parser) extract(rule Rule, m []string, clean, raw string) (model.Transaction, bool) {
	amountStr := strings.ReplaceAll(group(rule, m, "amount"), ",", "")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		return model.Transaction{}, false
	}

	merchant := CleanMerchant(group(rule, m, "merchant"))
	if merchant == "" {
		return model.Transaction{}, false
	}

	occurredAt := p.Now()
	if dateStr := group(rule, m, "date"); dateStr != "" {
		if d, ok := parseMessageDate(dateStr); ok {
			occurredAt = d
		}
	}

	ref := group(rule, m, "ref")
	if ref == "" {
		ref = id.NewSyntheticRef()
	}

	return model.Transaction{
		ReferenceID: ref,
		OccurredAt:  occurredAt,
		Amount:      amount,
		Merchant:    merchant,
		Description: "Payment to " + merchant,
		UPIHandle:   handleRe.FindString(clean),
		Bank:        rule.Label,
		RawMessage:  raw,
	}, true
}

// CleanMerchant trims a captured merchant span, strips punctuation and
// collapses internal whitespace. An empty result means the capture was all
// junk and the message is rejected.
func CleanMerchant(s string) string {
	s = merchantJunkRe.ReplaceAllString(strings.TrimSpace(s), "")
	return strings.Join(strings.Fields(s), " ")
}

// group returns the named capture from a match, or "" when the rule has no
// such group or it did not participate.
func group(rule Rule, m []string, name string) string {
	i := rule.Pattern.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}
