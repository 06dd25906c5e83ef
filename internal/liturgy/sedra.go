package liturgy

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

// ErrScheduleUnavailable is returned when the portions of a year cannot be
// laid out over its Saturdays.
var ErrScheduleUnavailable = errors.New("weekly reading schedule unavailable")

// Doubled readings are chosen in this order, first choice first. Matot-Masei
// is almost always joined; Behar-Bechukotai is the first to be split when
// an Israeli year gains a Saturday after Pesach.
var (
	winterPairs = []int{vayakhel}
	summerPairs = []int{matot, tazria, achreiMot, behar}
	closingPair = []int{nitzavim}
)

// yearCache holds computed layouts by Hebrew year. Layouts are pure
// functions of the year.
var yearCache sync.Map

// readingsFor returns the memoized layout of year.
func readingsFor(year int) (map[int]reading, error) {
	if v, ok := yearCache.Load(year); ok {
		return v.(map[int]reading), nil
	}
	readings, err := yearReadings(year)
	if err != nil {
		return nil, err
	}
	yearCache.Store(year, readings)
	return readings, nil
}

// yearReadings lays out the Israel weekly readings of a Hebrew year, keyed
// by the fixed day number of each Saturday.
//
// The year is cut at four anchors that never move: the Saturdays between
// Rosh Hashana and Sukkot read Vayeilech and/or Haazinu, Tzav (Metzora or
// Acharei Mot in leap years) falls on the last Saturday before Pesach,
// Devarim on the Saturday on or before Tisha B'Av, and Nitzavim on the last
// Saturday of the year. Between anchors, pairs are joined until the
// portions fit the available Saturdays.
func yearReadings(year int) (map[int]reading, error) {
	out := make(map[int]reading, 52)

	roshHashana := calendar.RoshHashana(year)
	nextRoshHashana := calendar.RoshHashana(year + 1)

	early := readableSaturdays(roshHashana, dayOf(year, calendar.Tishrei, 14))
	switch len(early) {
	case 1:
		out[early[0]] = reading{haazinu}
	case 2:
		out[early[0]] = reading{vayeilech}
		out[early[1]] = reading{haazinu}
	default:
		return nil, fmt.Errorf("year %d: %d saturdays before sukkot: %w", year, len(early), ErrScheduleUnavailable)
	}

	pesach := dayOf(year, calendar.Nisan, 15)
	winter := readableSaturdays(dayOf(year, calendar.Tishrei, 23), pesach-1)
	last := tzav
	if calendar.IsLeap(year) {
		last = bereshit + len(winter) - 1
		if last != metzora && last != achreiMot {
			return nil, fmt.Errorf("year %d: %d saturdays before pesach: %w", year, len(winter), ErrScheduleUnavailable)
		}
	}
	if err := fill(out, winter, bereshit, last, winterPairs); err != nil {
		return nil, fmt.Errorf("year %d winter: %w", year, err)
	}

	devarimDay := calendar.DayOnOrBefore(time.Saturday, dayOf(year, calendar.Av, 9))
	summer := readableSaturdays(pesach, devarimDay-1)
	if err := fill(out, summer, last+1, masei, summerPairs); err != nil {
		return nil, fmt.Errorf("year %d summer: %w", year, err)
	}

	// Vayeilech joins Nitzavim unless two Saturdays separate the next
	// Rosh Hashana from Sukkot, which happens when it falls on Monday or
	// Tuesday.
	end := nitzavim
	switch calendar.WeekdayOf(nextRoshHashana) {
	case time.Thursday, time.Saturday:
		end = vayeilech
	}
	closing := readableSaturdays(devarimDay, nextRoshHashana-1)
	if err := fill(out, closing, devarim, end, closingPair); err != nil {
		return nil, fmt.Errorf("year %d closing: %w", year, err)
	}

	return out, nil
}

// fill assigns portions first..last to slots in order, joining pairs from
// the priority list until the counts match.
func fill(out map[int]reading, slots []int, first, last int, pairs []int) error {
	var usable []int
	for _, p := range pairs {
		if p >= first && p+1 <= last {
			usable = append(usable, p)
		}
	}

	need := (last - first + 1) - len(slots)
	if need < 0 || need > len(usable) {
		return fmt.Errorf("%d portions for %d saturdays: %w", last-first+1, len(slots), ErrScheduleUnavailable)
	}

	joined := make(map[int]bool, need)
	for _, p := range usable[:need] {
		joined[p] = true
	}

	i := 0
	for p := first; p <= last; p++ {
		if joined[p] {
			out[slots[i]] = reading{p, p + 1}
			p++
		} else {
			out[slots[i]] = reading{p}
		}
		i++
	}
	return nil
}

// readableSaturdays lists the Saturdays in [from, to] that are not festival
// days in Israel.
func readableSaturdays(from, to int) []int {
	var days []int
	for d := from + int(time.Saturday-calendar.WeekdayOf(from)); d <= to; d += 7 {
		if !isFestival(calendar.FromHebrewDayNumber(d)) {
			days = append(days, d)
		}
	}
	return days
}

// isFestival reports whether a Saturday on h has its own reading instead
// of the weekly portion.
func isFestival(h calendar.HDate) bool {
	switch h.Month {
	case calendar.Tishrei:
		return h.Day == 1 || h.Day == 2 || h.Day == 10 || (h.Day >= 15 && h.Day <= 22)
	case calendar.Nisan:
		return h.Day >= 15 && h.Day <= 21
	case calendar.Sivan:
		return h.Day == 6
	}
	return false
}

func dayOf(year, month, day int) int {
	return calendar.HebrewDayNumber(calendar.HDate{Year: year, Month: month, Day: day})
}
