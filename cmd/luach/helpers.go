package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dateformat"
	"github.com/zapponejosh/luach/internal/gematriya"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseNumber accepts decimal digits or a Hebrew numeral ("ט״ו").
func parseNumber(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n, nil
	}
	if n, ok := gematriya.Decode(s); ok {
		return n, nil
	}
	return 0, fmt.Errorf("%q is not a number", s)
}

// parseYear is parseNumber for Hebrew years. Numerals written without the
// thousands ("תשפ״ה") are taken to be in the sixth millennium.
func parseYear(s string) (int, error) {
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if _, decErr := strconv.Atoi(strings.TrimSpace(s)); decErr != nil && n < 1000 {
		n += 5000
	}
	return n, nil
}

// parseMonth accepts a Hebrew month number or name.
func parseMonth(s string, year int) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n, nil
	}
	if m, ok := calendar.MonthByName(s, year); ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month %q in %d", s, year)
}

// dateArg reads an optional ISO date argument, defaulting to today.
func (a *app) dateArg(args []string) (time.Time, error) {
	iso := a.service.Today()
	if len(args) > 0 {
		iso = args[0]
	}
	t, err := calendar.ParseISO(iso, a.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", iso)
	}
	return t, nil
}

// prefFlag registers --pref on cmd, defaulting to the configured preference.
func prefFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "pref", "", "calendar to display: hebrew or gregorian (default from DATE_PREFERENCE)")
}

func (a *app) preference(flag string) dateformat.Preference {
	if flag == "" {
		return a.pref
	}
	return dateformat.ParsePreference(flag)
}
