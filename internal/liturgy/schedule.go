// Package liturgy resolves the weekly Torah portion and the holidays of a
// date under the Israel schedule, memoizing the answers.
package liturgy

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

// Schedule produces the raw liturgical labels of a civil date. The date's
// year, month and day are read; its clock and location are ignored.
type Schedule interface {
	// Parasha returns the weekly portion read on a Saturday, or "" when the
	// day has no portion.
	Parasha(date time.Time) (string, error)

	// Holidays returns every holiday label of the day, possibly none.
	Holidays(date time.Time) ([]string, error)
}

// IsraelSchedule is the Schedule observed in the Land of Israel: one
// festival day, Simchat Torah on Shemini Atzeret and the national days.
type IsraelSchedule struct{}

// Parasha implements Schedule.
func (IsraelSchedule) Parasha(date time.Time) (string, error) {
	n := calendar.DayNumber(date)
	if calendar.WeekdayOf(n) != time.Saturday {
		return "", nil
	}

	readings, err := readingsFor(calendar.FromHebrewDayNumber(n).Year)
	if err != nil {
		return "", err
	}
	if r, ok := readings[n]; ok {
		return r.Label(), nil
	}
	return "", nil
}

// Holidays implements Schedule.
func (IsraelSchedule) Holidays(date time.Time) ([]string, error) {
	return holidayLabels(calendar.DayNumber(date)), nil
}
