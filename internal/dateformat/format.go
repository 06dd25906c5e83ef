// Package dateformat renders dates for display in the Hebrew or Gregorian
// calendar. Every entry point is total: bad input yields a sentinel phrase
// from the message catalog, never an error or a panic.
package dateformat

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/gematriya"
)

// Preference selects the calendar a date is displayed in.
type Preference string

const (
	Hebrew    Preference = "hebrew"
	Gregorian Preference = "gregorian"
)

// ParsePreference maps a config value to a Preference, defaulting to Hebrew.
func ParsePreference(s string) Preference {
	if strings.EqualFold(strings.TrimSpace(s), string(Gregorian)) {
		return Gregorian
	}
	return Hebrew
}

// Formatter renders dates in a fixed location with a message catalog.
type Formatter struct {
	catalog *Catalog
	clock   Clock
	loc     *time.Location
}

// NewFormatter creates a Formatter. A nil clock uses the system clock and a
// nil location the local zone.
func NewFormatter(catalog *Catalog, clock Clock, loc *time.Location) *Formatter {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{catalog: catalog, clock: clock, loc: loc}
}

// Location returns the zone civil dates are computed in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Catalog returns the formatter's message catalog.
func (f *Formatter) Catalog() *Catalog {
	return f.catalog
}

// Format renders input as a display string. input may be a time.Time, a
// *time.Time or an ISO date string.
//
// Hebrew: "כ טבת תשפ״ד", with weekday "יום שני, כ טבת תשפ״ד".
// Gregorian: "1 January 2024", with weekday "Monday, 1 January 2024".
func (f *Formatter) Format(input any, pref Preference, weekday bool) (out string) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("date formatting failed", "component", "dateformat", "input", fmt.Sprint(input), "panic", p)
			out = f.catalog.Message(MsgDateError)
		}
	}()

	date, msg := f.civil(input)
	if msg != "" {
		return f.catalog.Message(msg)
	}

	if pref == Gregorian {
		return f.gregorian(date, weekday)
	}
	if calendar.DayNumber(date) < calendar.RoshHashana(1) {
		slog.Warn("date precedes the hebrew epoch", "component", "dateformat", "date", calendar.FormatISO(date))
		return f.catalog.Message(MsgDateError)
	}
	return f.hebrew(date, weekday)
}

// civil normalizes input to a civil date, or names the sentinel to show.
func (f *Formatter) civil(input any) (time.Time, string) {
	switch v := input.(type) {
	case nil:
		return time.Time{}, MsgNoDate
	case time.Time:
		if v.IsZero() {
			return time.Time{}, MsgNoDate
		}
		return calendar.Civil(v, f.loc), ""
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, MsgNoDate
		}
		return calendar.Civil(*v, f.loc), ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, MsgNoDate
		}
		t, err := calendar.ParseISO(s, f.loc)
		if err != nil {
			return time.Time{}, MsgInvalidDate
		}
		return t, ""
	}
	return time.Time{}, MsgInvalidDate
}

func (f *Formatter) hebrew(date time.Time, weekday bool) string {
	h := calendar.ToHebrew(date)
	s := gematriya.Encode(h.Day) + " " + calendar.MonthName(h.Month, h.Year) + " " + gematriya.EncodeYear(h.Year)
	if weekday {
		s = calendar.WeekdayName(date.Weekday()) + ", " + s
	}
	return s
}

func (f *Formatter) gregorian(date time.Time, weekday bool) string {
	s := fmt.Sprintf("%d %s %d", date.Day(), f.catalog.Message(date.Month().String()), date.Year())
	if weekday {
		s = f.catalog.Message(date.Weekday().String()) + ", " + s
	}
	return s
}

// Today returns the current civil date as an ISO string.
func (f *Formatter) Today() string {
	return calendar.FormatISO(calendar.Civil(f.clock.Now(), f.loc))
}
