package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dateformat"
	"github.com/zapponejosh/luach/internal/logger"
)

func todayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's date in both calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			iso := a.service.Today()

			out := struct {
				ISO       string `json:"date"`
				Hebrew    string `json:"hebrew"`
				Gregorian string `json:"gregorian"`
				Parasha   string `json:"parasha,omitempty"`
				Holiday   string `json:"holiday,omitempty"`
			}{
				ISO:       iso,
				Hebrew:    a.service.Format(iso, dateformat.Hebrew, true),
				Gregorian: a.service.Format(iso, dateformat.Gregorian, true),
			}
			if p := a.service.Parasha(ctx, iso); p != nil {
				out.Parasha = *p
			}
			if h := a.service.Holiday(ctx, iso); h != nil {
				out.Holiday = *h
			}

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Hebrew)
			fmt.Fprintln(w, out.Gregorian)
			for _, line := range []string{out.Parasha, out.Holiday} {
				if line != "" {
					fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}

func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [YYYY-MM-DD]",
		Short: "Convert a Gregorian date to the Hebrew calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dateArg(args)
			if err != nil {
				return err
			}
			iso := calendar.FormatISO(t)
			h := a.service.ToHebrew(iso)
			if h == nil {
				return fmt.Errorf("cannot convert %s", iso)
			}

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), h)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %d\t%s\n", h.Day, h.MonthName, h.Year, a.service.Format(iso, dateformat.Hebrew, false))
			return nil
		},
	}
}

func gregorianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gregorian <day> <month> <year>",
		Short: "Convert a Hebrew date to the Gregorian calendar",
		Long: `Convert a Hebrew date to the Gregorian calendar.

Day and year may be digits or Hebrew numerals; month may be a number
(Nisan=1 ... Adar II=13) or a name. Invalid dates are clamped.`,
		Example: `  luach gregorian 20 10 5784
  luach gregorian כ טבת תשפ״ד`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			year, err := parseYear(args[2])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1], year)
			if err != nil {
				return err
			}

			iso := a.service.ToGregorian(day, month, year)
			if iso == nil {
				return fmt.Errorf("%d/%d/%d has no Gregorian date", day, month, year)
			}
			logger.Debug(cmd.Context(), "converted", "component", "cli", "day", day, "month", month, "year", year, "date", *iso)

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{"date": *iso})
			}
			fmt.Fprintln(cmd.OutOrStdout(), *iso)
			return nil
		},
	}
}

func monthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months <year>",
		Short: "List the months of a Hebrew year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			months := a.service.MonthsForYear(year)

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), months)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, m := range months {
				fmt.Fprintf(w, "%d\t%s\t%d\n", m.Value, m.Name, a.service.DaysInMonth(m.Value, year))
			}
			return nil
		},
	}
}

func daysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "days <month> <year>",
		Short: "Print the length of a Hebrew month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[1])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[0], year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.service.DaysInMonth(month, year))
			return nil
		},
	}
}

func numeralCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "numeral <n>",
		Short: "Write a number as a Hebrew numeral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.service.Numeral(n))
			return nil
		},
	}
}

func formatCmd(a *app) *cobra.Command {
	var (
		pref    string
		weekday bool
	)
	cmd := &cobra.Command{
		Use:   "format [YYYY-MM-DD]",
		Short: "Format a date for display",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.service.Today()
			if len(args) > 0 {
				input = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.service.Format(input, a.preference(pref), weekday))
			return nil
		},
	}
	prefFlag(cmd, &pref)
	cmd.Flags().BoolVar(&weekday, "weekday", false, "prefix the day of the week")
	return cmd
}

func relativeCmd(a *app) *cobra.Command {
	var (
		pref   string
		posted bool
	)
	cmd := &cobra.Command{
		Use:   "relative <YYYY-MM-DD | RFC3339 timestamp>",
		Short: "Describe a date relative to now",
		Long: `Describe a date relative to now. A calendar date gives "today", "tomorrow",
"in N days from now" and so on; with --posted an RFC 3339 timestamp is
described as time elapsed ("3 hours ago").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !posted {
				fmt.Fprintln(cmd.OutOrStdout(), a.service.RelativeLabel(args[0]))
				return nil
			}
			ts, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.service.RelativePosted(ts, a.preference(pref)))
			return nil
		},
	}
	prefFlag(cmd, &pref)
	cmd.Flags().BoolVar(&posted, "posted", false, "treat the argument as a timestamp and describe elapsed time")
	return cmd
}
