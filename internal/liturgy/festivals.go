package liturgy

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

// KeyDate is one anchor day of a Hebrew year.
type KeyDate struct {
	Name string         `json:"name"`
	Date time.Time      `json:"date"`
	Day  calendar.HDate `json:"hebrew"`
}

// RoshHashanaDate returns the first day of Rosh Hashana of year.
func RoshHashanaDate(year int, loc *time.Location) time.Time {
	return calendar.FromDayNumber(calendar.RoshHashana(year), loc)
}

// YomKippurDate returns 10 Tishrei of year.
func YomKippurDate(year int, loc *time.Location) time.Time {
	return RoshHashanaDate(year, loc).AddDate(0, 0, 9)
}

// PesachDate returns 15 Nisan of year.
func PesachDate(year int, loc *time.Location) time.Time {
	return calendar.FromDayNumber(dayOf(year, calendar.Nisan, 15), loc)
}

// ShavuotDate returns 6 Sivan, the day after the seven weeks counted from
// the second day of Pesach.
func ShavuotDate(year int, loc *time.Location) time.Time {
	return PesachDate(year, loc).AddDate(0, 0, 50)
}

// TishaBavDate returns the observed fast of 9 Av, moved to Sunday when the
// ninth is a Saturday.
func TishaBavDate(year int, loc *time.Location) time.Time {
	n := dayOf(year, calendar.Av, 9)
	if calendar.WeekdayOf(n) == time.Saturday {
		n++
	}
	return calendar.FromDayNumber(n, loc)
}

// KeyDates lists the anchor days of a Hebrew year in calendar order.
func KeyDates(year int, loc *time.Location) []KeyDate {
	rh := RoshHashanaDate(year, loc)
	anchors := []struct {
		name string
		date time.Time
	}{
		{"ראש השנה", rh},
		{"יום כיפור", YomKippurDate(year, loc)},
		{"סוכות", rh.AddDate(0, 0, 14)},
		{"חנוכה", calendar.FromDayNumber(dayOf(year, calendar.Kislev, 25), loc)},
		{"פורים", calendar.FromDayNumber(dayOf(year, purimMonth(year), 14), loc)},
		{"פסח", PesachDate(year, loc)},
		{"שבועות", ShavuotDate(year, loc)},
		{"תשעה באב", TishaBavDate(year, loc)},
	}

	dates := make([]KeyDate, 0, len(anchors))
	for _, a := range anchors {
		dates = append(dates, KeyDate{
			Name: a.name,
			Date: a.date,
			Day:  calendar.ToHebrew(a.date),
		})
	}
	return dates
}
