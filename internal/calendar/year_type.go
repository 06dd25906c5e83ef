package calendar

import "time"

// Year kinds, by the combined length of Cheshvan and Kislev.
const (
	// Deficient years have 29-day Cheshvan and Kislev (353 or 383 days).
	Deficient = "deficient"

	// Regular years have a 29-day Cheshvan and 30-day Kislev (354 or 384 days).
	Regular = "regular"

	// Complete years have 30-day Cheshvan and Kislev (355 or 385 days).
	Complete = "complete"
)

// YearType is the shape of a Hebrew year. Fourteen shapes exist; they
// decide how the weekly portions are laid out over the year.
//
// Examples:
//   - 5784: leap, 383 days, deficient, Rosh Hashana on Saturday
//   - 5785: common, 355 days, complete, Rosh Hashana on Thursday
type YearType struct {
	Year        int
	Leap        bool
	Length      int
	Kind        string
	RoshHashana time.Weekday
	Pesach      time.Weekday
}

// YearTypeOf computes the shape of year.
func YearTypeOf(year int) YearType {
	length := DaysInYear(year)

	kind := Regular
	switch length % 10 {
	case 3:
		kind = Deficient
	case 5:
		kind = Complete
	}

	return YearType{
		Year:        year,
		Leap:        IsLeap(year),
		Length:      length,
		Kind:        kind,
		RoshHashana: WeekdayOf(RoshHashana(year)),
		Pesach:      WeekdayOf(HebrewDayNumber(HDate{Year: year, Month: Nisan, Day: 15})),
	}
}

// HebrewYearOf returns the Hebrew year that contains the date of t. The
// year changes at Rosh Hashana, in September or October.
func HebrewYearOf(t time.Time) int {
	return ToHebrew(t).Year
}
