// Package gematriya renders integers as Hebrew letter numerals.
package gematriya

import "strings"

const (
	// Geresh marks a single-letter numeral.
	Geresh = "׳"
	// Gershayim is placed before the last letter of a multi-letter numeral.
	Gershayim = "״"

	fallback = "א"
)

// dayNumerals covers the days of a Hebrew month. 15 and 16 are written
// ט״ו and ט״ז instead of the arithmetic י״ה / י״ו.
var dayNumerals = [...]string{
	"",
	"א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט", "י",
	"י״א", "י״ב", "י״ג", "י״ד", "ט״ו", "ט״ז", "י״ז", "י״ח", "י״ט", "כ",
	"כ״א", "כ״ב", "כ״ג", "כ״ד", "כ״ה", "כ״ו", "כ״ז", "כ״ח", "כ״ט", "ל",
}

var (
	units    = [...]string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	tens     = [...]string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	hundreds = [...]string{"", "ק", "ר", "ש", "ת"}
)

// Encode returns the Hebrew numeral for n.
//
// Values up to 30 come from a fixed table, 31..4999 are composed from
// letters, and values of 5000 and above are treated as years. Inputs below
// 1 return the numeral for 1.
func Encode(n int) string {
	switch {
	case n <= 0:
		return fallback
	case n <= 30:
		return dayNumerals[n]
	case n < 100:
		return belowHundred(n)
	case n < 5000:
		return hundredsLetters(n/100) + belowHundred(n%100)
	default:
		return EncodeYear(n)
	}
}

// EncodeYear renders a year the customary way: the thousands are dropped
// and a geresh or gershayim is inserted. 5785 becomes תשפ״ה.
func EncodeYear(n int) string {
	if n <= 0 {
		return fallback
	}
	rem := n % 1000
	if rem == 0 {
		return units[(n/1000)%10] + Geresh
	}
	return Punctuated(rem)
}

// Punctuated renders n below 1000 with a geresh or gershayim, the form used
// for ordinals such as the days of Chanukah ("ג׳").
func Punctuated(n int) string {
	if n <= 0 {
		return fallback + Geresh
	}
	n %= 1000
	return punctuate(hundredsLetters(n/100) + belowHundred(n%100))
}

func belowHundred(n int) string {
	switch n {
	case 0:
		return ""
	case 15:
		return "טו"
	case 16:
		return "טז"
	}
	return tens[n/10] + units[n%10]
}

// hundredsLetters writes count hundreds, repeating ת for values over 400.
func hundredsLetters(count int) string {
	var b strings.Builder
	for count > 4 {
		b.WriteString(hundreds[4])
		count -= 4
	}
	b.WriteString(hundreds[count])
	return b.String()
}

func punctuate(letters string) string {
	r := []rune(letters)
	switch len(r) {
	case 0:
		return fallback
	case 1:
		return letters + Geresh
	}
	return string(r[:len(r)-1]) + Gershayim + string(r[len(r)-1])
}

var letterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40, 'נ': 50, 'ן': 50,
	'ס': 60, 'ע': 70, 'פ': 80, 'ף': 80, 'צ': 90, 'ץ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// Decode sums the letter values of a numeral, ignoring punctuation and
// ASCII quotes. It reports false when s holds anything else.
func Decode(s string) (int, bool) {
	total := 0
	for _, r := range strings.TrimSpace(s) {
		switch r {
		case '׳', '״', '\'', '"':
			continue
		}
		v, ok := letterValues[r]
		if !ok {
			return 0, false
		}
		total += v
	}
	return total, total > 0
}
