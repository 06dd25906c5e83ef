package feed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/luach/internal/liturgy"
)

var stampTime = time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newResolver() *liturgy.Resolver {
	return liturgy.NewResolver(liturgy.IsraelSchedule{}, nil, liturgy.NewMetrics(prometheus.NewRegistry()))
}

func decode(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal
}

func TestBuild(t *testing.T) {
	data, err := Build(context.Background(), newResolver(), day(2024, 12, 24), day(2024, 12, 28), stampTime)
	require.NoError(t, err)

	cal := decode(t, data)
	events := cal.Events()

	// Erev Chanukah, three days of Chanukah, and the Saturday portion.
	require.Len(t, events, 5)

	var summaries []string
	for _, e := range events {
		s, err := e.Props.Text("SUMMARY")
		require.NoError(t, err)
		summaries = append(summaries, s)

		uid, err := e.Props.Text("UID")
		require.NoError(t, err)
		assert.Contains(t, uid, "@"+Domain)
	}
	assert.Contains(t, summaries, "ערב חנוכה")
	assert.Contains(t, summaries, "חנוכה: נר ג׳")
	assert.Contains(t, summaries, "פרשת מקץ")

	assert.Contains(t, string(data), "DTSTART;VALUE=DATE:20241228")
	assert.Contains(t, string(data), "PRODID:"+ProdID)
}

func TestBuild_Deterministic(t *testing.T) {
	from, to := day(2024, 3, 1), day(2024, 3, 31)

	first, err := Build(context.Background(), newResolver(), from, to, stampTime)
	require.NoError(t, err)
	second, err := Build(context.Background(), newResolver(), from, to, stampTime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_EmptyRange(t *testing.T) {
	data, err := Build(context.Background(), newResolver(), day(2024, 1, 1), day(2024, 1, 2), stampTime)
	require.NoError(t, err)
	assert.Equal(t, stub, string(data))

	_, err = Build(context.Background(), newResolver(), day(2024, 1, 2), day(2024, 1, 1), stampTime)
	assert.Error(t, err)
}

type failingLabeler struct{}

func (failingLabeler) Range(context.Context, time.Time, time.Time) ([]liturgy.DayLabels, error) {
	return nil, errors.New("unavailable")
}

func TestBuild_LabelerError(t *testing.T) {
	_, err := Build(context.Background(), failingLabeler{}, day(2024, 1, 1), day(2024, 1, 7), stampTime)
	assert.ErrorContains(t, err, "unavailable")
}

func TestUID(t *testing.T) {
	a := UID(liturgy.KindHoliday, day(2024, 3, 24))
	assert.Equal(t, a, UID(liturgy.KindHoliday, day(2024, 3, 24)))
	assert.NotEqual(t, a, UID(liturgy.KindParasha, day(2024, 3, 24)))
	assert.NotEqual(t, a, UID(liturgy.KindHoliday, day(2024, 3, 25)))
	assert.Len(t, a, 24+len("@"+Domain))
}
