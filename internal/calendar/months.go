package calendar

import (
	"strings"
	"time"
)

// Month describes one month of a given Hebrew year for calendar pickers.
type Month struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

var monthNames = map[int]string{
	Nisan:    "ניסן",
	Iyyar:    "אייר",
	Sivan:    "סיון",
	Tamuz:    "תמוז",
	Av:       "אב",
	Elul:     "אלול",
	Tishrei:  "תשרי",
	Cheshvan: "חשון",
	Kislev:   "כסלו",
	Tevet:    "טבת",
	Shvat:    "שבט",
	Adar1:    "אדר",
	Adar2:    "אדר ב׳",
}

var monthNamesEnglish = map[int]string{
	Nisan:    "Nisan",
	Iyyar:    "Iyyar",
	Sivan:    "Sivan",
	Tamuz:    "Tamuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Tevet:    "Tevet",
	Shvat:    "Sh'vat",
	Adar1:    "Adar",
	Adar2:    "Adar II",
}

// MonthName returns the Hebrew name of month in year. In leap years the
// twelfth month is Adar I and the thirteenth Adar II; in common years the
// twelfth is plain Adar. Unknown months return "".
func MonthName(month, year int) string {
	if month == Adar1 && IsLeap(year) {
		return "אדר א׳"
	}
	return monthNames[month]
}

// MonthNameEnglish is MonthName transliterated.
func MonthNameEnglish(month, year int) string {
	if month == Adar1 && IsLeap(year) {
		return "Adar I"
	}
	return monthNamesEnglish[month]
}

// MonthsForYear lists the months of year in calendar order, Tishrei first.
func MonthsForYear(year int) []Month {
	order := []int{Tishrei, Cheshvan, Kislev, Tevet, Shvat, Adar1}
	if IsLeap(year) {
		order = append(order, Adar2)
	}
	order = append(order, Nisan, Iyyar, Sivan, Tamuz, Av, Elul)

	months := make([]Month, 0, len(order))
	for _, m := range order {
		months = append(months, Month{Value: m, Name: MonthName(m, year)})
	}
	return months
}

var weekdayNames = [...]string{
	"יום ראשון", "יום שני", "יום שלישי", "יום רביעי", "יום חמישי", "יום שישי", "שבת",
}

// WeekdayName returns the Hebrew name of a weekday ("יום שני", "שבת").
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[wd]
}

// MonthByName finds a month by its Hebrew or English name in year, ignoring
// case. "Adar I"/"אדר א׳" and plain "Adar"/"אדר" both name month 12.
func MonthByName(name string, year int) (int, bool) {
	name = strings.TrimSpace(name)
	for m := Nisan; m <= MonthsInYear(year); m++ {
		if strings.EqualFold(name, MonthName(m, year)) || strings.EqualFold(name, MonthNameEnglish(m, year)) ||
			name == monthNames[m] || strings.EqualFold(name, monthNamesEnglish[m]) {
			return m, true
		}
	}
	return 0, false
}
