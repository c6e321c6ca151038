package sms

import "regexp"

// Rule is one dialect of payment-notification phrasing. Pattern carries the
// named capture groups amount, merchant, date and ref; absent groups fall
// back per field (current date, synthesized reference id). Exclude, when set,
// must NOT match or the rule is skipped — RE2 has no negative lookahead, so
// "this dialect never mentions UPI or a reference keyword" lives here.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
	Exclude *regexp.Regexp
}

const (
	amountPat = `(?P<amount>\d+(?:,\d+)*(?:\.\d{2})?)`
	slashDate = `\d{2}/\d{2}/\d{4}`
	dashDate  = `\d{2}-[A-Za-z]{3}-\d{4}`

	// merchantStop ends the lazily-matched merchant span. Without a consumed
	// terminator a lazy group followed by .*? stops at the first word, so
	// multi-word merchant names would be cut short.
	merchantStop = `(?:\s+(?:via|using|through|thru|from)\b|\s*[.,]|\s*$)`
)

// Rules is the dialect table, scanned in order with first match winning.
// A message that satisfies several shapes is always attributed to the
// earliest rule here, so the order is part of the contract: distinctively
// worded bank and app dialects first, the account-debit shape next, and the
// broad UPI catch-all last.
var Rules = []Rule{
	{
		Label: "HDFC",
		Pattern: regexp.MustCompile(`(?i)Rs\.?\s*` + amountPat +
			`\s+(?:debited|paid)\b.*?\b(?:to|at)\s+(?P<merchant>[^.]+?)` +
			`(?:\s+on\s+(?P<date>` + slashDate + `))?` + merchantStop + `.*?\bUPI\s+Ref\s*(?:No|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "SBI",
		Pattern: regexp.MustCompile(`(?i)Rs\.?\s*` + amountPat +
			`\s+(?:debited|sent)\b.*?\b(?:to|at)\s+(?P<merchant>[^.]+?)` +
			`(?:\s+on\s+(?P<date>` + slashDate + `))?` + merchantStop + `.*?\bUPI\b.*?\b(?:Ref|TXN)\s*(?:No|ID|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "ICICI",
		Pattern: regexp.MustCompile(`(?i)Rs\.?\s*` + amountPat +
			`\s+(?:debited|paid)\b.*?\b(?:to|at)\s+(?P<merchant>[^.]+?)` +
			`(?:\s+on\s+(?P<date>` + slashDate + `))?` + merchantStop + `.*?\b(?:Ref|TRN)\s*(?:No|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "Axis",
		Pattern: regexp.MustCompile(`(?i)(?:You\s+(?:paid|sent)\s+)?Rs\.?\s*` + amountPat +
			`\s+(?:(?:debited|paid)\b.*?)?\b(?:to|at)\s+(?P<merchant>[^.]+?)` +
			merchantStop + `.*?\bTXN\s*(?:No|ID|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "Google Pay",
		Pattern: regexp.MustCompile(`(?i)You\s+(?:paid|sent)\s+Rs\.?\s*` + amountPat +
			`\s+to\s+(?P<merchant>[^.]+?)` + merchantStop + `.*?\bUPI\b.*?\bID\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "PhonePe",
		Pattern: regexp.MustCompile(`(?i)Rs\.?\s*` + amountPat +
			`\s+(?:paid|sent)\s+to\s+(?P<merchant>[^.]+?)` + merchantStop + `.*?\bUPI\b.*?\b(?:Ref|TXN)\s*(?:No|ID|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		Label: "Paytm",
		Pattern: regexp.MustCompile(`(?i)Rs\.?\s*` + amountPat +
			`\s+(?:paid|sent)\s+to\s+(?P<merchant>[^.]+?)` + merchantStop + `.*?\bUPI\b.*?\b(?:Order|TXN)\s*(?:No|ID|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
	{
		// Account-debit notifications that carry a date but no reference
		// token at all. The reference id is synthesized downstream.
		Label: "Generic Bank",
		Pattern: regexp.MustCompile(`(?i)\b(?:a/c|acct|account)\s*(?:no\.?\s*)?(?:[X*]+\d*|\d+)\s+is\s+debited\s+(?:with\s+|for\s+)?(?:Rs\.?|INR)\s*` + amountPat +
			`\s+on\s+(?P<date>` + slashDate + `|` + dashDate + `)\s+(?:to|at)\s+(?P<merchant>[^.:]+?)(?:\s+(?:info|Avl|Bal|Not)\b|\s*[.:]|$)`),
		Exclude: regexp.MustCompile(`(?i)\b(?:UPI|Ref|TXN|TRN|Order|ID)\b`),
	},
	{
		Label: "Generic",
		Pattern: regexp.MustCompile(`(?i)(?:Rs\.?|INR)\s*` + amountPat +
			`\s+(?:debited|paid|sent)\b.*?\b(?:to|at)\s+(?P<merchant>[^.]+?)` +
			`(?:\s+on\s+(?P<date>` + slashDate + `))?` + merchantStop + `.*?\b(?:Ref|TXN|ID)\s*(?:No|#)?\s*[.:]?\s*(?P<ref>\w+)`),
	},
}
