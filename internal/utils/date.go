package utils

import (
	"time"
)

// DateLayout is the wire format for calendar dates. Dates carry no
// time-of-day component.
const DateLayout = "2006-01-02"

// ParseDate parses a date of the form 'YYYY-MM-DD'.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// FormatDate renders a date back into 'YYYY-MM-DD'.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// DayDiff returns the difference in whole days between dateA and dateB.
// Negative when dateA precedes dateB.
func DayDiff(dateA, dateB time.Time) int {
	return int(dateA.Sub(dateB) / (24 * time.Hour))
}
