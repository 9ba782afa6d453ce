package hotelsearch

import "time"

// DateLayout is the canonical YYYY-MM-DD form used in every outgoing request.
const DateLayout = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD using t's own year, month, and day
// fields. The value is never converted to UTC first, so a date picked in the
// caller's zone keeps its calendar day. The result has a four-digit year
// only for years 0 through 9999; ParseDate never yields a year outside it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
// A nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}
