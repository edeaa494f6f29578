package domain

import (
	"fmt"
	"time"
)

const calendarLayout = "2006-01-02"

// FormatLocalDate renders the calendar day the value names in its own
// location. Formatting through UTC instead can roll the day backward or
// forward depending on the zone offset, which would book a different stay
// than the one the guest picked.
func FormatLocalDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseCalendarDate reads a YYYY-MM-DD day into a midnight UTC timestamp.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(calendarLayout, s)
}
