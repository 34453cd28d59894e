package util

import "time"

// MonthKey returns the sortable bucket key for a date, e.g. "2026-03"
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel returns the display label for a date, e.g. "Mar 26"
func MonthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// StartOfMonth returns midnight UTC on the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonthKey parses a "2006-01" key back into the first day of that month
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse("2006-01", key)
}
