package calendar

import (
	"time"
)

// ISOLayout is the calendar-date layout used at every string boundary.
const ISOLayout = "2006-01-02"

const (
	secondsPerDay = 24 * 60 * 60

	// unixEpochDay is the fixed day number of 1970-01-01.
	unixEpochDay = 719163
)

// DayNumber returns the fixed day number of the calendar date of t, counting
// 0001-01-01 (proleptic Gregorian) as day 1. Only the date part of t in its
// own location is used.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return int(u/secondsPerDay) + unixEpochDay
}

// FromDayNumber returns midnight of the given fixed day in loc.
func FromDayNumber(n int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	u := time.Unix(int64(n-unixEpochDay)*secondsPerDay, 0).UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, loc)
}

// WeekdayOf returns the weekday of a fixed day number.
func WeekdayOf(n int) time.Weekday {
	return time.Weekday(((n % 7) + 7) % 7)
}

// DayOnOrBefore returns the fixed day of the last weekday wd on or before n.
func DayOnOrBefore(wd time.Weekday, n int) int {
	return n - int(WeekdayOf(n-int(wd)))
}

// Civil strips the time of day from t, keeping its calendar date in loc.
func Civil(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ParseISO parses a date string in YYYY-MM-DD format as midnight in loc.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(ISOLayout, s, loc)
}

// FormatISO formats a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// SaturdaysInMonth lists every Saturday of a Gregorian month, midnight in loc.
func SaturdaysInMonth(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(time.Saturday) - int(first.Weekday()) + 7) % 7

	var days []time.Time
	for d := first.AddDate(0, 0, offset); d.Month() == month; d = d.AddDate(0, 0, 7) {
		days = append(days, d)
	}
	return days
}
