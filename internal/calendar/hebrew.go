// Package calendar converts between Gregorian dates and the Hebrew calendar.
//
// Both calendars are mapped onto fixed day numbers (day 1 is 0001-01-01 in
// the proleptic Gregorian calendar). The Hebrew side uses the molad
// arithmetic of the fixed calendar with the four postponement rules, so
// results are exact for any year from 1 AM onwards.
package calendar

import (
	"fmt"
	"log/slog"
	"time"
)

// Hebrew month numbers. Nisan is month 1 even though the year starts at
// Tishrei. Adar2 only exists in leap years.
const (
	Nisan    = 1
	Iyyar    = 2
	Sivan    = 3
	Tamuz    = 4
	Av       = 5
	Elul     = 6
	Tishrei  = 7
	Cheshvan = 8
	Kislev   = 9
	Tevet    = 10
	Shvat    = 11
	Adar1    = 12
	Adar2    = 13
)

const (
	// epoch is the fixed day number preceding 1 Tishrei AM 1.
	epoch = -1373428

	// avgYearDays is the mean Hebrew year length used to estimate a year.
	avgYearDays = 365.24682220597794

	partsPerHour = 1080
	hoursPerDay  = 24
)

// HDate is a Hebrew calendar date.
type HDate struct {
	Year  int
	Month int
	Day   int
}

// String renders the date numerically, e.g. "5784-10-20".
func (h HDate) String() string {
	return fmt.Sprintf("%d-%02d-%02d", h.Year, h.Month, h.Day)
}

// IsLeap reports whether year has thirteen months. Leap years sit at
// positions 3, 6, 8, 11, 14, 17 and 19 of the 19-year cycle.
func IsLeap(year int) bool {
	return mod(1+7*year, 19) < 7
}

// MonthsInYear returns 13 for leap years and 12 otherwise.
func MonthsInYear(year int) int {
	if IsLeap(year) {
		return 13
	}
	return 12
}

// elapsedDays counts the days from the epoch to 1 Tishrei of year,
// applying the molad postponements.
func elapsedDays(year int) int {
	prev := year - 1
	cycles, pos := floorDiv(prev, 19), mod(prev, 19)

	months := 235*cycles + 12*pos + (7*pos+1)/19
	partsElapsed := 204 + 793*mod(months, partsPerHour)
	hoursElapsed := 5 + 12*months + 793*floorDiv(months, partsPerHour) + partsElapsed/partsPerHour
	parts := mod(partsElapsed, partsPerHour) + partsPerHour*mod(hoursElapsed, hoursPerDay)
	day := 1 + 29*months + hoursElapsed/hoursPerDay

	alt := day
	if parts >= 19440 ||
		(mod(day, 7) == 2 && parts >= 9924 && !IsLeap(year)) ||
		(mod(day, 7) == 1 && parts >= 16789 && IsLeap(prev)) {
		alt++
	}
	switch mod(alt, 7) {
	case 0, 3, 5:
		alt++
	}
	return alt
}

// DaysInYear returns the length of a Hebrew year: 353-355 days, or
// 383-385 in leap years.
func DaysInYear(year int) int {
	return elapsedDays(year+1) - elapsedDays(year)
}

// monthLength is the arithmetic month length used by the day-number
// transform. Callers outside this file use DaysInMonth.
func monthLength(month, year int) int {
	switch month {
	case Iyyar, Tamuz, Elul, Tevet, Adar2:
		return 29
	case Adar1:
		if !IsLeap(year) {
			return 29
		}
	case Cheshvan:
		if DaysInYear(year)%10 != 5 {
			return 29
		}
	case Kislev:
		if DaysInYear(year)%10 == 3 {
			return 29
		}
	}
	return 30
}

// RoshHashana returns the fixed day number of 1 Tishrei of year.
func RoshHashana(year int) int {
	return epoch + elapsedDays(year)
}

// HebrewDayNumber returns the fixed day number of a Hebrew date. Days past
// the end of a month spill into the following month.
func HebrewDayNumber(h HDate) int {
	days := h.Day
	if h.Month < Tishrei {
		for m := Tishrei; m <= MonthsInYear(h.Year); m++ {
			days += monthLength(m, h.Year)
		}
		for m := Nisan; m < h.Month; m++ {
			days += monthLength(m, h.Year)
		}
	} else {
		for m := Tishrei; m < h.Month; m++ {
			days += monthLength(m, h.Year)
		}
	}
	return RoshHashana(h.Year) + days - 1
}

// FromHebrewDayNumber converts a fixed day number to a Hebrew date. Days
// before 1 Tishrei AM 1 return that date.
func FromHebrewDayNumber(n int) HDate {
	if n < RoshHashana(1) {
		return HDate{Year: 1, Month: Tishrei, Day: 1}
	}

	year := int(float64(n-epoch) / avgYearDays)
	if year < 1 {
		year = 1
	}
	for RoshHashana(year) <= n {
		year++
	}
	year--

	month := Nisan
	if n < HebrewDayNumber(HDate{Year: year, Month: Nisan, Day: 1}) {
		month = Tishrei
	}
	for n > HebrewDayNumber(HDate{Year: year, Month: month, Day: monthLength(month, year)}) {
		month++
	}

	day := 1 + n - HebrewDayNumber(HDate{Year: year, Month: month, Day: 1})
	return HDate{Year: year, Month: month, Day: day}
}

// ToHebrew converts the calendar date of t to a Hebrew date.
func ToHebrew(t time.Time) HDate {
	return FromHebrewDayNumber(DayNumber(t))
}

// ToGregorian converts a Hebrew date to its Gregorian date at midnight UTC.
// Out-of-range input is clamped first; see Clamp.
func ToGregorian(h HDate) time.Time {
	return ToGregorianIn(h, time.UTC)
}

// ToGregorianIn is ToGregorian with the result anchored in loc.
func ToGregorianIn(h HDate, loc *time.Location) time.Time {
	clamped, changed := h.Clamp()
	if changed {
		slog.Warn("hebrew date clamped",
			slog.String("component", "calendar"),
			slog.String("input", h.String()),
			slog.String("clamped", clamped.String()),
		)
	}
	return FromDayNumber(HebrewDayNumber(clamped), loc)
}

// Clamp pulls each field into its valid range for the year: year to at
// least 1, month to 1..13 and month 13 to 12 in a common year, day to 1..30.
// It reports whether anything changed.
func (h HDate) Clamp() (HDate, bool) {
	out := h
	if out.Year < 1 {
		out.Year = 1
	}
	if out.Month < Nisan {
		out.Month = Nisan
	}
	if out.Month > Adar2 {
		out.Month = Adar2
	}
	if out.Month == Adar2 && !IsLeap(out.Year) {
		out.Month = Adar1
	}
	if out.Day < 1 {
		out.Day = 1
	}
	if out.Day > 30 {
		out.Day = 30
	}
	return out, out != h
}

// Valid reports whether h names an existing day.
func (h HDate) Valid() bool {
	if h.Year < 1 || h.Month < Nisan || h.Month > MonthsInYear(h.Year) || h.Day < 1 {
		return false
	}
	return h.Day <= DaysInMonth(h.Month, h.Year)
}

// DaysInMonth returns 29 or 30. The length is found by probing: day 30 of
// the month is converted to Gregorian and back, and the month has 30 days
// only if the result still falls in the same month. Cheshvan and Kislev
// change length from year to year, so no fixed table is consulted.
func DaysInMonth(month, year int) int {
	probe := HDate{Year: year, Month: month, Day: 30}
	want, _ := probe.Clamp()
	back := ToHebrew(ToGregorian(probe))
	if back == want {
		return 30
	}
	return 29
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
