package utils

import (
	"regexp"
	"time"
)

const ISODate = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseISODate accepts only strict YYYY-MM-DD calendar dates, in local time.
func ParseISODate(s string) (time.Time, bool) {
	if !isoDateRe.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(ISODate, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISODate returns t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODate)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysBetween counts calendar days from a to b (negative when b is before a).
// Computed on dates rather than durations so DST shifts don't skew it.
func DaysBetween(a, b time.Time) int {
	a, b = StartOfDay(a), StartOfDay(b)
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}
