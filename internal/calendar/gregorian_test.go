package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNumber(t *testing.T) {
	assert.Equal(t, 1, DayNumber(date(1, time.January, 1)))
	assert.Equal(t, unixEpochDay, DayNumber(date(1970, time.January, 1)))
	assert.Equal(t, 738886, DayNumber(date(2024, time.January, 1)))

	for _, d := range []time.Time{date(1582, time.October, 15), date(1969, time.December, 31), date(2100, time.March, 1)} {
		assert.True(t, FromDayNumber(DayNumber(d), time.UTC).Equal(d), "round trip of %s", FormatISO(d))
	}
}

func TestWeekdayOf(t *testing.T) {
	for d := date(2024, time.January, 1); d.Before(date(2024, time.January, 15)); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, d.Weekday(), WeekdayOf(DayNumber(d)))
	}
}

func TestDayOnOrBefore(t *testing.T) {
	monday := DayNumber(date(2024, time.January, 1))
	sat := DayOnOrBefore(time.Saturday, monday)
	assert.Equal(t, "2023-12-30", FormatISO(FromDayNumber(sat, time.UTC)))
	assert.Equal(t, monday, DayOnOrBefore(time.Monday, monday))
}

func TestParseISO(t *testing.T) {
	got, err := ParseISO("2024-01-01", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(date(2024, time.January, 1)))

	_, err = ParseISO("2024-02-30", time.UTC)
	assert.Error(t, err)

	_, err = ParseISO("01/01/2024", time.UTC)
	assert.Error(t, err)
}

func TestCivil(t *testing.T) {
	loc := time.FixedZone("IST", 2*60*60)
	late := time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC)

	got := Civil(late, loc)
	assert.Equal(t, "2024-01-02", FormatISO(got))
	assert.Equal(t, 0, got.Hour())
}

func TestSaturdaysInMonth(t *testing.T) {
	days := SaturdaysInMonth(2024, time.March, time.UTC)
	require.Len(t, days, 5)
	assert.Equal(t, "2024-03-02", FormatISO(days[0]))
	assert.Equal(t, "2024-03-30", FormatISO(days[4]))
	for _, d := range days {
		assert.Equal(t, time.Saturday, d.Weekday())
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "יום שני", WeekdayName(time.Monday))
	assert.Equal(t, "שבת", WeekdayName(time.Saturday))
}
