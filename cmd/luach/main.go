// Package main is the entry point for the luach command line calendar.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach/internal/config"
	"github.com/zapponejosh/luach/internal/dateformat"
	"github.com/zapponejosh/luach/internal/liturgy"
	"github.com/zapponejosh/luach/internal/logger"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	loc      *time.Location
	pref     dateformat.Preference
	registry *prometheus.Registry
	resolver *liturgy.Resolver
	service  *dateformat.Service
	clock    dateformat.Clock
	asJSON   bool
}

func newRootCmd(clock dateformat.Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:   "luach",
		Short: "Hebrew and Gregorian calendar tools",
		Long: `luach converts dates between the Gregorian and Hebrew calendars, writes
Hebrew numerals, and looks up the weekly Torah portion and holidays
under the Israel schedule.

Configuration is read from the environment (and .env): LANGUAGE,
DATE_PREFERENCE, TIMEZONE, CACHE_SIZE, LOG_LEVEL, LOG_FORMAT.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.init(); err != nil {
				return err
			}
			cmd.SetContext(logger.WithOp(cmd.Context(), cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.logMetrics(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print machine readable JSON")

	root.AddCommand(
		todayCmd(a),
		convertCmd(a),
		gregorianCmd(a),
		monthsCmd(a),
		daysCmd(a),
		numeralCmd(a),
		formatCmd(a),
		relativeCmd(a),
		parashaCmd(a),
		holidayCmd(a),
		monthCmd(a),
		yearCmd(a),
		icsCmd(a),
	)

	return root
}

// init loads configuration and wires the services.
func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	catalog, err := dateformat.NewCatalog(cfg.Language)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	cache, err := liturgy.NewCache(cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	a.cfg = cfg
	a.loc = loc
	a.pref = dateformat.ParsePreference(cfg.DatePreference)
	a.registry = prometheus.NewRegistry()
	a.resolver = liturgy.NewResolver(liturgy.IsraelSchedule{}, cache, liturgy.NewMetrics(a.registry))
	a.service = dateformat.NewService(dateformat.NewFormatter(catalog, a.clock, loc), a.resolver)

	slog.Debug("configuration loaded",
		slog.String("component", "cli"),
		slog.String("language", cfg.Language),
		slog.String("preference", cfg.DatePreference),
		slog.String("timezone", loc.String()),
		slog.Int("cache_size", cfg.CacheSize),
	)
	return nil
}

// logMetrics reports the resolver counters at debug level.
func (a *app) logMetrics(ctx context.Context) {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		logger.Warn(ctx, "gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"component", "cli", "metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			logger.Debug(ctx, "resolver metric", attrs...)
		}
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(dateformat.RealClock{}).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
