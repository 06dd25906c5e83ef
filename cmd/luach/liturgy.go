package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dateformat"
	"github.com/zapponejosh/luach/internal/feed"
	"github.com/zapponejosh/luach/internal/liturgy"
	"github.com/zapponejosh/luach/internal/logger"
)

func parashaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parasha [YYYY-MM-DD]",
		Short: "Show the Torah portion read on a Saturday",
		Long: `Show the Torah portion read on a Saturday under the Israel schedule.
On a festival Saturday the festival is shown instead. Other days print nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dateArg(args)
			if err != nil {
				return err
			}
			label, _ := a.resolver.Parasha(cmd.Context(), t)
			return a.printLabel(cmd, calendar.FormatISO(t), "parasha", label)
		},
	}
}

func holidayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "holiday [YYYY-MM-DD]",
		Short: "Show the holidays and observances of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dateArg(args)
			if err != nil {
				return err
			}
			label, _ := a.resolver.Holiday(cmd.Context(), t)
			return a.printLabel(cmd, calendar.FormatISO(t), "holiday", label)
		},
	}
}

func (a *app) printLabel(cmd *cobra.Command, iso, key, label string) error {
	if a.asJSON {
		return printJSON(cmd.OutOrStdout(), map[string]string{"date": iso, key: label})
	}
	if label != "" {
		fmt.Fprintln(cmd.OutOrStdout(), label)
	}
	return nil
}

func monthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "List the Saturdays of a Gregorian month with their portions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := a.clock.Now().In(a.loc)
			if len(args) > 0 {
				t, err := time.ParseInLocation("2006-01", args[0], a.loc)
				if err != nil {
					return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
				}
				ref = t
			}

			days, err := a.resolver.PrefetchMonth(cmd.Context(), ref.Year(), ref.Month(), a.loc)
			if err != nil {
				return err
			}

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), days)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, d := range days {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ISO, a.service.Format(d.ISO, dateformat.Hebrew, false), d.Parasha, d.Holiday)
			}
			return nil
		},
	}
}

func yearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year [hebrew-year]",
		Short: "Describe a Hebrew year and list its key dates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := calendar.HebrewYearOf(a.clock.Now().In(a.loc))
			if len(args) > 0 {
				y, err := parseYear(args[0])
				if err != nil {
					return err
				}
				year = y
			}
			if year < 1 {
				return fmt.Errorf("year %d is before the Hebrew epoch", year)
			}

			yt := calendar.YearTypeOf(year)
			dates := liturgy.KeyDates(year, a.loc)

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					Type  calendar.YearType `json:"type"`
					Dates []liturgy.KeyDate `json:"dates"`
				}{yt, dates})
			}

			out := cmd.OutOrStdout()
			leap := "common"
			if yt.Leap {
				leap = "leap"
			}
			fmt.Fprintf(out, "%s (%d): %s %s year, %d days, Rosh Hashana on %s, Pesach on %s\n\n",
				a.service.Numeral(year), year, leap, yt.Kind, yt.Length, yt.RoshHashana, yt.Pesach)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, kd := range dates {
				iso := calendar.FormatISO(kd.Date)
				fmt.Fprintf(w, "%s\t%s\t%s\n", kd.Name, iso, a.service.Format(iso, dateformat.Hebrew, true))
			}
			return nil
		},
	}
}

func icsCmd(a *app) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write an iCalendar feed of portions and holidays",
		Example: `  luach ics --from 2024-10-01 --to 2025-09-30 --out luach.ics
  luach ics > next-year.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.clock.Now()

			start := calendar.Civil(now, a.loc)
			if from != "" {
				t, err := calendar.ParseISO(from, a.loc)
				if err != nil {
					return fmt.Errorf("invalid --from %q", from)
				}
				start = t
			}
			end := start.AddDate(1, 0, -1)
			if to != "" {
				t, err := calendar.ParseISO(to, a.loc)
				if err != nil {
					return fmt.Errorf("invalid --to %q", to)
				}
				end = t
			}

			data, err := feed.Build(cmd.Context(), a.resolver, start, end, now)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write feed: %w", err)
			}
			logger.Info(cmd.Context(), "feed written", "component", "cli", "path", out, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD (default one year after --from)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
