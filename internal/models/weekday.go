package models

import (
	"strings"
	"time"
)

var weekdayNames = func() map[string]string {
	names := make(map[string]string, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := d.String()
		names[strings.ToLower(full)] = full
		names[strings.ToLower(full[:3])] = full
	}
	return names
}()

// CanonicalWeekday maps "monday", "MON" or "Monday" to "Monday".
func CanonicalWeekday(raw string) (string, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(raw))]
	return day, ok
}

// WeekdayAbbreviation returns the 3-letter form of a day name, "Monday" -> "Mon".
func WeekdayAbbreviation(day string) string {
	if len(day) <= 3 {
		return day
	}
	return day[:3]
}
