package liturgy

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/gematriya"
)

// First Hebrew years in which the national days were observed.
const (
	firstAtzmautYear      = 5708
	firstShoahYear        = 5711
	firstYerushalayimYear = 5728
	firstSigdYear         = 5769

	// From 5757 Yom HaShoah moves off Sunday; from 5764 Yom HaAtzmaut
	// moves off Monday.
	shoahSundayRuleYear   = 5757
	atzmautMondayRuleYear = 5764
)

// holidayLabels returns every label of the fixed day n under the Israel
// schedule, festivals first and special Shabbatot last.
func holidayLabels(n int) []string {
	h := calendar.FromHebrewDayNumber(n)
	wd := calendar.WeekdayOf(n)
	shabbat := wd == time.Saturday

	var labels []string
	add := func(s string) { labels = append(labels, s) }

	switch h.Month {
	case calendar.Tishrei:
		switch {
		case h.Day == 1:
			add("ראש השנה א׳")
		case h.Day == 2:
			add("ראש השנה ב׳")
		case h.Day == 9:
			add("ערב יום כיפור")
		case h.Day == 10:
			add("יום כיפור")
		case h.Day == 14:
			add("ערב סוכות")
		case h.Day == 15:
			add("סוכות")
		case h.Day >= 16 && h.Day <= 20:
			add(cholHamoed("סוכות", shabbat))
		case h.Day == 21:
			add("הושענא רבה")
		case h.Day == 22:
			add("שמיני עצרת ושמחת תורה")
		}
		if observedFast(h.Day, 3, wd) {
			add("צום גדליה")
		}

	case calendar.Cheshvan:
		if h.Day == 29 && h.Year >= firstSigdYear {
			add("סיגד")
		}

	case calendar.Kislev:
		if h.Day == 24 {
			add("ערב חנוכה")
		}

	case calendar.Tevet:
		if h.Day == 10 {
			add("עשרה בטבת")
		}

	case calendar.Shvat:
		if h.Day == 15 {
			add("ט״ו בשבט")
		}

	case calendar.Adar1, calendar.Adar2:
		if h.Month == purimMonth(h.Year) {
			if h.Day == 13 && wd != time.Saturday || h.Day == 11 && wd == time.Thursday {
				add("תענית אסתר")
			}
			switch h.Day {
			case 14:
				add("פורים")
			case 15:
				add("שושן פורים")
			}
		} else {
			switch h.Day {
			case 14:
				add("פורים קטן")
			case 15:
				add("שושן פורים קטן")
			}
		}

	case calendar.Nisan:
		switch {
		case h.Day == 14:
			add("ערב פסח")
		case h.Day == 15:
			add("פסח")
		case h.Day >= 16 && h.Day <= 20:
			add(cholHamoed("פסח", shabbat))
		case h.Day == 21:
			add("שביעי של פסח")
		}
		if h.Day == 14 && wd != time.Saturday || h.Day == 12 && wd == time.Thursday {
			add("תענית בכורות")
		}
		if h.Year >= firstShoahYear && h.Day == yomHaShoah(h.Year) {
			add("יום השואה")
		}

	case calendar.Iyyar:
		if h.Year >= firstAtzmautYear {
			atzmaut := yomHaAtzmaut(h.Year)
			switch h.Day {
			case atzmaut - 1:
				add("יום הזיכרון")
			case atzmaut:
				add("יום העצמאות")
			}
		}
		switch h.Day {
		case 14:
			add("פסח שני")
		case 18:
			add("ל״ג בעומר")
		case 28:
			if h.Year >= firstYerushalayimYear {
				add("יום ירושלים")
			}
		}

	case calendar.Sivan:
		switch h.Day {
		case 5:
			add("ערב שבועות")
		case 6:
			add("שבועות")
		}

	case calendar.Tamuz:
		if observedFast(h.Day, 17, wd) {
			add("שבעה עשר בתמוז")
		}

	case calendar.Av:
		if observedFast(h.Day, 9, wd) {
			add("תשעה באב")
		}
		if h.Day == 15 {
			add("ט״ו באב")
		}

	case calendar.Elul:
		if h.Day == 29 {
			add("ערב ראש השנה")
		}
	}

	if day := chanukahDay(n, h.Year); day > 0 {
		add("חנוכה: נר " + gematriya.Punctuated(day))
	}

	if h.Day == 1 && h.Month != calendar.Tishrei {
		add("ראש חודש " + calendar.MonthName(h.Month, h.Year))
	}
	if h.Day == 30 {
		next := nextMonth(h.Month, h.Year)
		add("ראש חודש " + calendar.MonthName(next, h.Year))
	}

	if shabbat {
		labels = append(labels, specialShabbat(n, h)...)
	}
	return labels
}

// specialShabbat names the Saturdays with an added reading or a name of
// their own.
func specialShabbat(n int, h calendar.HDate) []string {
	var labels []string
	year := h.Year

	if h.Month == calendar.Tishrei && h.Day >= 3 && h.Day <= 9 {
		labels = append(labels, "שבת שובה")
	}

	adar := dayOf(year, purimMonth(year), 1)
	purim := dayOf(year, purimMonth(year), 14)
	nisan := dayOf(year, calendar.Nisan, 1)
	pesach := dayOf(year, calendar.Nisan, 15)
	av9 := dayOf(year, calendar.Av, 9)

	switch {
	case between(adar-n, 0, 6):
		labels = append(labels, "שבת שקלים")
	case between(purim-n, 1, 7):
		labels = append(labels, "שבת זכור")
	case between(nisan-n, 7, 13):
		labels = append(labels, "שבת פרה")
	case between(nisan-n, 0, 6):
		labels = append(labels, "שבת החודש")
	case between(pesach-n, 1, 7):
		labels = append(labels, "שבת הגדול")
	case between(av9-n, 0, 6):
		labels = append(labels, "שבת חזון")
	case between(n-av9, 1, 7):
		labels = append(labels, "שבת נחמו")
	}

	if readings, err := readingsFor(year); err == nil && readings[n].contains(beshalach) {
		labels = append(labels, "שבת שירה")
	}
	return labels
}

func cholHamoed(festival string, shabbat bool) string {
	if shabbat {
		return "שבת חול המועד " + festival
	}
	return "חול המועד " + festival
}

// observedFast reports whether day is the observed date of a fast set on
// fixed. A fast falling on Saturday moves to Sunday.
func observedFast(day, fixed int, wd time.Weekday) bool {
	if day == fixed {
		return wd != time.Saturday
	}
	return day == fixed+1 && wd == time.Sunday
}

// purimMonth is Adar II in leap years and Adar otherwise.
func purimMonth(year int) int {
	if calendar.IsLeap(year) {
		return calendar.Adar2
	}
	return calendar.Adar1
}

func nextMonth(month, year int) int {
	switch {
	case month == calendar.Adar1 && calendar.IsLeap(year):
		return calendar.Adar2
	case month == calendar.Adar1 || month == calendar.Adar2:
		return calendar.Nisan
	case month == calendar.Elul:
		return calendar.Tishrei
	}
	return month + 1
}

// chanukahDay returns 1..8 for the days of Chanukah and 0 otherwise.
func chanukahDay(n, year int) int {
	day := n - dayOf(year, calendar.Kislev, 25) + 1
	if day < 1 || day > 8 {
		return 0
	}
	return day
}

// yomHaShoah is 27 Nisan, moved back to Thursday when it falls on Friday
// and forward to Monday when it falls on Sunday.
func yomHaShoah(year int) int {
	day := 27
	switch calendar.WeekdayOf(dayOf(year, calendar.Nisan, day)) {
	case time.Friday:
		day = 26
	case time.Sunday:
		if year >= shoahSundayRuleYear {
			day = 28
		}
	}
	return day
}

// yomHaAtzmaut is 5 Iyar, moved to the preceding Thursday from Friday or
// Saturday and to Tuesday from Monday. Yom HaZikaron is the day before.
func yomHaAtzmaut(year int) int {
	day := 5
	switch calendar.WeekdayOf(dayOf(year, calendar.Iyyar, day)) {
	case time.Friday:
		day = 4
	case time.Saturday:
		day = 3
	case time.Monday:
		if year >= atzmautMondayRuleYear {
			day = 6
		}
	}
	return day
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
