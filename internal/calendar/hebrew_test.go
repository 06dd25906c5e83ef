package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToHebrew_KnownDates(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want HDate
	}{
		{"new year 2024 is 20 Tevet", date(2024, time.January, 1), HDate{5784, Tevet, 20}},
		{"Asara B'Tevet 5784", date(2023, time.December, 22), HDate{5784, Tevet, 10}},
		{"Purim 5784 in Adar II", date(2024, time.March, 24), HDate{5784, Adar2, 14}},
		{"Pesach 5784", date(2024, time.April, 23), HDate{5784, Nisan, 15}},
		{"Rosh Hashana 5785", date(2024, time.October, 3), HDate{5785, Tishrei, 1}},
		{"Purim 5785 in plain Adar", date(2025, time.March, 14), HDate{5785, Adar1, 14}},
		{"Rosh Hashana 5786", date(2025, time.September, 23), HDate{5786, Tishrei, 1}},
		{"millennium", date(2000, time.January, 1), HDate{5760, Tevet, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHebrew(tt.in))
			assert.True(t, ToGregorian(tt.want).Equal(tt.in), "ToGregorian(%v) = %v", tt.want, ToGregorian(tt.want))
		})
	}
}

func TestToHebrew_IgnoresTimeOfDayAndLocation(t *testing.T) {
	jerusalem := time.FixedZone("IST", 2*60*60)
	evening := time.Date(2024, time.January, 1, 23, 30, 0, 0, jerusalem)

	assert.Equal(t, HDate{5784, Tevet, 20}, ToHebrew(evening))
}

func TestRoundTrip_GregorianToHebrew(t *testing.T) {
	start := date(1900, time.January, 1)
	end := date(2100, time.December, 31)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		h := ToHebrew(d)
		back := ToGregorian(h)
		if !back.Equal(d) {
			t.Fatalf("ToGregorian(ToHebrew(%s)) = %s via %v", FormatISO(d), FormatISO(back), h)
		}
	}
}

func TestRoundTrip_HebrewToGregorian(t *testing.T) {
	for year := 5660; year <= 5860; year++ {
		for _, m := range MonthsForYear(year) {
			for day := 1; day <= DaysInMonth(m.Value, year); day++ {
				h := HDate{Year: year, Month: m.Value, Day: day}
				back := ToHebrew(ToGregorian(h))
				if back != h {
					t.Fatalf("ToHebrew(ToGregorian(%v)) = %v", h, back)
				}
			}
		}
	}
}

func TestIsLeap(t *testing.T) {
	leapYears := map[int]bool{5782: true, 5784: true, 5787: true, 5790: true}
	for year := 5781; year <= 5790; year++ {
		assert.Equal(t, leapYears[year], IsLeap(year), "IsLeap(%d)", year)
	}

	for year := 1; year <= 6000; year++ {
		require.Equal(t, IsLeap(year), IsLeap(year+19), "periodicity broken at %d", year)
	}
}

func TestIsLeap_SevenPerCycle(t *testing.T) {
	count := 0
	for year := 5701; year < 5720; year++ {
		if IsLeap(year) {
			count++
		}
	}
	assert.Equal(t, 7, count)
}

func TestDaysInYear(t *testing.T) {
	tests := map[int]int{5782: 384, 5783: 355, 5784: 383, 5785: 355, 5786: 354, 5787: 385}
	for year, want := range tests {
		assert.Equal(t, want, DaysInYear(year), "DaysInYear(%d)", year)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"Tishrei always full", Tishrei, 5785, 30},
		{"short Cheshvan in deficient year", Cheshvan, 5784, 29},
		{"long Cheshvan in complete year", Cheshvan, 5785, 30},
		{"short Kislev in deficient year", Kislev, 5784, 29},
		{"long Kislev in regular year", Kislev, 5786, 30},
		{"short Cheshvan in regular year", Cheshvan, 5786, 29},
		{"Adar I in leap year", Adar1, 5784, 30},
		{"Adar II in leap year", Adar2, 5784, 29},
		{"plain Adar", Adar1, 5785, 29},
		{"Nisan", Nisan, 5785, 30},
		{"Elul never has 30 days", Elul, 5785, 29},
		{"Adar II in common year clamps to Adar", Adar2, 5785, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestDaysInMonth_Bounds(t *testing.T) {
	for year := 5700; year <= 5900; year++ {
		total := 0
		for _, m := range MonthsForYear(year) {
			n := DaysInMonth(m.Value, year)
			require.Contains(t, []int{29, 30}, n, "DaysInMonth(%d, %d)", m.Value, year)
			total += n
		}
		require.Equal(t, DaysInYear(year), total, "month lengths of %d", year)
	}
}

func TestToGregorian_ClampsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   HDate
		want HDate
	}{
		{"Adar II in common year", HDate{5785, Adar2, 5}, HDate{5785, Adar1, 5}},
		{"month above range", HDate{5784, 14, 1}, HDate{5784, Adar2, 1}},
		{"month below range", HDate{5785, 0, 1}, HDate{5785, Nisan, 1}},
		{"day below range", HDate{5785, Tishrei, -3}, HDate{5785, Tishrei, 1}},
		{"day above range", HDate{5785, Tishrei, 31}, HDate{5785, Tishrei, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.in.Clamp()
			assert.True(t, changed)
			assert.Equal(t, tt.want, got)
			assert.True(t, ToGregorian(tt.in).Equal(ToGregorian(tt.want)))
		})
	}
}

func TestHDate_Valid(t *testing.T) {
	assert.True(t, HDate{5784, Adar2, 29}.Valid())
	assert.False(t, HDate{5785, Adar2, 1}.Valid())
	assert.False(t, HDate{5784, Cheshvan, 30}.Valid())
	assert.False(t, HDate{0, Tishrei, 1}.Valid())
}

func TestMonthsForYear(t *testing.T) {
	common := MonthsForYear(5785)
	require.Len(t, common, 12)
	assert.Equal(t, Month{Value: Tishrei, Name: "תשרי"}, common[0])
	assert.Equal(t, Month{Value: Adar1, Name: "אדר"}, common[5])
	assert.Equal(t, Month{Value: Nisan, Name: "ניסן"}, common[6])
	assert.Equal(t, Month{Value: Elul, Name: "אלול"}, common[11])

	leap := MonthsForYear(5784)
	require.Len(t, leap, 13)
	assert.Equal(t, Month{Value: Adar1, Name: "אדר א׳"}, leap[5])
	assert.Equal(t, Month{Value: Adar2, Name: "אדר ב׳"}, leap[6])
	assert.Equal(t, Month{Value: Nisan, Name: "ניסן"}, leap[7])
}

func TestYearTypeOf(t *testing.T) {
	yt := YearTypeOf(5784)
	assert.True(t, yt.Leap)
	assert.Equal(t, 383, yt.Length)
	assert.Equal(t, Deficient, yt.Kind)
	assert.Equal(t, time.Saturday, yt.RoshHashana)
	assert.Equal(t, time.Tuesday, yt.Pesach)

	yt = YearTypeOf(5785)
	assert.False(t, yt.Leap)
	assert.Equal(t, Complete, yt.Kind)
	assert.Equal(t, time.Thursday, yt.RoshHashana)
	assert.Equal(t, time.Sunday, yt.Pesach)
}

func TestRoshHashana_NeverOnForbiddenDays(t *testing.T) {
	for year := 5600; year <= 6000; year++ {
		wd := WeekdayOf(RoshHashana(year))
		require.NotContains(t, []time.Weekday{time.Sunday, time.Wednesday, time.Friday}, wd, "year %d", year)
	}
}
