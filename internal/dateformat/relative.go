package dateformat

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

// Breakpoints of RelativePosted, in seconds.
const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// RelativeLabel describes an upcoming ISO date relative to today: "today",
// "tomorrow", "day after tomorrow" or "in N days from now". Past and
// unparseable dates give "".
func (f *Formatter) RelativeLabel(iso string) string {
	date, err := calendar.ParseISO(iso, f.loc)
	if err != nil {
		return ""
	}
	today := calendar.Civil(f.clock.Now(), f.loc)

	switch delta := calendar.DayNumber(date) - calendar.DayNumber(today); {
	case delta < 0:
		return ""
	case delta == 0:
		return f.catalog.Message(MsgToday)
	case delta == 1:
		return f.catalog.Message(MsgTomorrow)
	case delta == 2:
		return f.catalog.Message(MsgDayAfterTomorrow)
	default:
		return f.catalog.Count(MsgInDays, delta)
	}
}

// RelativePosted describes how long ago ts was: seconds, minutes or hours
// within the last day, then "yesterday" and "day before yesterday", then
// the full date in pref. Timestamps in the future count as just now.
func (f *Formatter) RelativePosted(ts time.Time, pref Preference) string {
	if ts.IsZero() {
		return f.catalog.Message(MsgNoDate)
	}

	elapsed := int(f.clock.Now().Sub(ts) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < minute:
		return f.catalog.Count(MsgSecondsAgo, elapsed)
	case elapsed < hour:
		return f.catalog.Count(MsgMinutesAgo, elapsed/minute)
	case elapsed < day:
		return f.catalog.Count(MsgHoursAgo, elapsed/hour)
	case elapsed < 2*day:
		return f.catalog.Message(MsgYesterday)
	case elapsed < 3*day:
		return f.catalog.Message(MsgDayBeforeYesterday)
	default:
		return f.Format(ts, pref, false)
	}
}
