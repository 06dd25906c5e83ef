package dateformat

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/luach/internal/liturgy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	resolver := liturgy.NewResolver(liturgy.IsraelSchedule{}, &liturgy.MapCache{}, liturgy.NewMetrics(prometheus.NewRegistry()))
	return NewService(newTestFormatter(t, "en"), resolver)
}

func TestService_ToHebrew(t *testing.T) {
	s := newTestService(t)

	got := s.ToHebrew("2024-01-01")
	require.NotNil(t, got)
	assert.Equal(t, HebrewDay{Day: 20, Month: 10, Year: 5784, MonthName: "טבת", Leap: true}, *got)

	assert.Nil(t, s.ToHebrew("2024/01/01"))
	assert.Nil(t, s.ToHebrew(""))
}

func TestService_ToGregorian(t *testing.T) {
	s := newTestService(t)

	got := s.ToGregorian(20, 10, 5784)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-01", *got)

	// Adar II does not exist in 5785 and clamps to Adar.
	got = s.ToGregorian(14, 13, 5785)
	require.NotNil(t, got)
	assert.Equal(t, "2025-03-14", *got)

	// Year 1 lies before the Gregorian year 1.
	assert.Nil(t, s.ToGregorian(1, 7, 1))
}

func TestService_RoundTrip(t *testing.T) {
	s := newTestService(t)
	for _, iso := range []string{"1900-03-01", "2000-02-29", "2024-01-01", "2100-12-31"} {
		h := s.ToHebrew(iso)
		require.NotNil(t, h)
		back := s.ToGregorian(h.Day, h.Month, h.Year)
		require.NotNil(t, back)
		assert.Equal(t, iso, *back)
	}
}

func TestService_Calendar(t *testing.T) {
	s := newTestService(t)

	assert.Len(t, s.MonthsForYear(5784), 13)
	assert.Len(t, s.MonthsForYear(5785), 12)
	assert.Equal(t, 29, s.DaysInMonth(10, 5784))
	assert.Equal(t, 30, s.DaysInMonth(7, 5784))
	assert.Equal(t, "ט״ו", s.Numeral(15))
	assert.Equal(t, "2024-01-01", s.Today())
	assert.Equal(t, "tomorrow", s.RelativeLabel("2024-01-02"))
	assert.Equal(t, "1 January 2024", s.Format("2024-01-01", Gregorian, false))
}

func TestService_Liturgy(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	parasha := s.Parasha(ctx, "2024-01-06")
	require.NotNil(t, parasha)
	assert.Equal(t, "פרשת שמות", *parasha)

	assert.Nil(t, s.Parasha(ctx, "2024-01-01"), "not a saturday")
	assert.Nil(t, s.Parasha(ctx, "garbage"))

	holiday := s.Holiday(ctx, "2024-12-31")
	require.NotNil(t, holiday)
	assert.Equal(t, "חנוכה: נר ו׳, ראש חודש טבת", *holiday)

	assert.Nil(t, s.Holiday(ctx, "2024-01-01"))
}
