package sms

import (
	"strconv"
	"strings"
	"time"
)

// Month codes are matched case-sensitively; "24-sep-2025" is not a date for
// our purposes and falls back to the current day, same as a missing capture.
var monthCodes = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// parseMessageDate parses the two calendar shapes messages use:
// DD/MM/YYYY and DD-Mon-YYYY. Anything else returns false and the caller
// substitutes the current date. Out-of-range day or month numbers normalize
// forward the way calendar arithmetic does; the source feeds never produce
// them on purpose.
func parseMessageDate(s string) (time.Time, bool) {
	if parts := strings.Split(s, "/"); len(parts) == 3 {
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	year, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}
	month, ok := monthCodes[parts[1]]
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}
