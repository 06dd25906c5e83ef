package dateformat

import (
	"context"
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/gematriya"
	"github.com/zapponejosh/luach/internal/liturgy"
)

// HebrewDay is a converted date as handed to callers.
type HebrewDay struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	MonthName string `json:"monthName"`
	Leap      bool   `json:"leap"`
}

// Service is the in-process surface used by pickers and list views. Every
// method is total; absent results are nil or "".
type Service struct {
	formatter *Formatter
	resolver  *liturgy.Resolver
}

// NewService wires a formatter and a resolver together.
func NewService(formatter *Formatter, resolver *liturgy.Resolver) *Service {
	return &Service{formatter: formatter, resolver: resolver}
}

// Formatter returns the underlying formatter.
func (s *Service) Formatter() *Formatter {
	return s.formatter
}

// ToHebrew converts an ISO date. It returns nil for unparseable input.
func (s *Service) ToHebrew(iso string) *HebrewDay {
	t, err := calendar.ParseISO(iso, s.formatter.loc)
	if err != nil {
		return nil
	}
	h := calendar.ToHebrew(t)
	return &HebrewDay{
		Day:       h.Day,
		Month:     h.Month,
		Year:      h.Year,
		MonthName: calendar.MonthName(h.Month, h.Year),
		Leap:      calendar.IsLeap(h.Year),
	}
}

// ToGregorian converts a Hebrew date to an ISO string. Out-of-range parts
// are clamped first. It returns nil when the result has no four-digit
// Gregorian year.
func (s *Service) ToGregorian(day, month, year int) *string {
	t := calendar.ToGregorianIn(calendar.HDate{Year: year, Month: month, Day: day}, s.formatter.loc)
	if t.Year() < 1 || t.Year() > 9999 {
		return nil
	}
	iso := calendar.FormatISO(t)
	return &iso
}

// MonthsForYear lists the months of a Hebrew year, Tishrei first.
func (s *Service) MonthsForYear(year int) []calendar.Month {
	return calendar.MonthsForYear(year)
}

// DaysInMonth returns 29 or 30.
func (s *Service) DaysInMonth(month, year int) int {
	return calendar.DaysInMonth(month, year)
}

// Numeral renders n as a Hebrew numeral.
func (s *Service) Numeral(n int) string {
	return gematriya.Encode(n)
}

// Format renders a date; see Formatter.Format.
func (s *Service) Format(input any, pref Preference, weekday bool) string {
	return s.formatter.Format(input, pref, weekday)
}

// Today returns today's ISO date.
func (s *Service) Today() string {
	return s.formatter.Today()
}

// RelativeLabel describes an upcoming ISO date; see Formatter.RelativeLabel.
func (s *Service) RelativeLabel(iso string) string {
	return s.formatter.RelativeLabel(iso)
}

// RelativePosted describes a past timestamp; see Formatter.RelativePosted.
func (s *Service) RelativePosted(ts time.Time, pref Preference) string {
	return s.formatter.RelativePosted(ts, pref)
}

// Parasha returns the reading of a Saturday, or nil.
func (s *Service) Parasha(ctx context.Context, iso string) *string {
	return s.resolve(ctx, iso, s.resolver.Parasha)
}

// Holiday returns the joined holiday labels of a date, or nil.
func (s *Service) Holiday(ctx context.Context, iso string) *string {
	return s.resolve(ctx, iso, s.resolver.Holiday)
}

func (s *Service) resolve(ctx context.Context, iso string, fn func(context.Context, time.Time) (string, bool)) *string {
	t, err := calendar.ParseISO(iso, s.formatter.loc)
	if err != nil {
		return nil
	}
	label, ok := fn(ctx, t)
	if !ok {
		return nil
	}
	return &label
}
