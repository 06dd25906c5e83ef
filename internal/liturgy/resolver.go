package liturgy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/logger"
)

// Label kinds, used as cache key prefixes and metric labels.
const (
	KindParasha = "parasha"
	KindHoliday = "holiday"
)

// holidaySeparator joins the labels of a day with several holidays.
const holidaySeparator = ", "

// Resolver answers portion and holiday queries through a cache. Failures
// inside the schedule are logged and reported as no label; they are never
// cached, so a later call retries.
type Resolver struct {
	schedule Schedule
	cache    Cache
	metrics  *Metrics
}

// NewResolver creates a resolver. A nil cache defaults to an unbounded
// MapCache and nil metrics to unregistered ones.
func NewResolver(schedule Schedule, cache Cache, metrics *Metrics) *Resolver {
	if cache == nil {
		cache = &MapCache{}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Resolver{schedule: schedule, cache: cache, metrics: metrics}
}

// Parasha returns the weekly portion of t's date, or the festival reading
// when a festival displaces it. Days other than Saturday have none.
func (r *Resolver) Parasha(ctx context.Context, t time.Time) (string, bool) {
	if t.Weekday() != time.Saturday {
		return "", false
	}
	return r.lookup(ctx, KindParasha, t, func() (string, error) {
		label, err := r.schedule.Parasha(t)
		if err != nil {
			logger.Warn(ctx, "weekly portion unavailable, using festival reading",
				"component", "liturgy", "date", calendar.FormatISO(t), "error", err)
		}
		if label != "" {
			return label, nil
		}

		holidays, herr := r.schedule.Holidays(t)
		if herr != nil {
			return "", herr
		}
		if len(holidays) > 0 {
			return holidays[0], nil
		}
		return "", err
	})
}

// Holiday returns the holiday labels of t's date joined with ", ".
func (r *Resolver) Holiday(ctx context.Context, t time.Time) (string, bool) {
	return r.lookup(ctx, KindHoliday, t, func() (string, error) {
		labels, err := r.schedule.Holidays(t)
		if err != nil {
			return "", err
		}
		return strings.Join(labels, holidaySeparator), nil
	})
}

func (r *Resolver) lookup(ctx context.Context, kind string, t time.Time, compute func() (string, error)) (string, bool) {
	key := kind + ":" + calendar.FormatISO(t)

	if label, ok := r.cache.Get(key); ok {
		r.metrics.CacheLookups.WithLabelValues(kind, "hit").Inc()
		return label, label != ""
	}
	r.metrics.CacheLookups.WithLabelValues(kind, "miss").Inc()

	start := time.Now()
	label, err := safely(compute)
	r.metrics.ComputeTime.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		r.metrics.Failures.WithLabelValues(kind).Inc()
		logger.Error(ctx, "liturgical lookup failed", err,
			"component", "liturgy", "kind", kind, "date", calendar.FormatISO(t))
		return "", false
	}

	r.cache.Add(key, label)
	return label, label != ""
}

// safely runs compute, turning a panic into an error.
func safely(compute func() (string, error)) (label string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("schedule panicked: %v", p)
		}
	}()
	return compute()
}

// DayLabels is the resolved output for one date.
type DayLabels struct {
	Date    time.Time `json:"-"`
	ISO     string    `json:"date"`
	Parasha string    `json:"parasha,omitempty"`
	Holiday string    `json:"holiday,omitempty"`
}

// PrefetchMonth resolves every Saturday of a Gregorian month concurrently
// and returns them in date order once all are done. It warms the cache for
// later single lookups.
func (r *Resolver) PrefetchMonth(ctx context.Context, year int, month time.Month, loc *time.Location) ([]DayLabels, error) {
	saturdays := calendar.SaturdaysInMonth(year, month, loc)
	out := make([]DayLabels, len(saturdays))

	g, ctx := errgroup.WithContext(ctx)
	for i, day := range saturdays {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parasha, _ := r.Parasha(ctx, day)
			holiday, _ := r.Holiday(ctx, day)
			out[i] = DayLabels{
				Date:    day,
				ISO:     calendar.FormatISO(day),
				Parasha: parasha,
				Holiday: holiday,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("prefetch %d-%02d: %w", year, month, err)
	}

	logger.Debug(ctx, "month prefetched", "component", "liturgy", "year", year, "month", int(month), "saturdays", len(out))
	return out, nil
}

// Range resolves every day in [from, to] and returns the days that carry a
// portion or a holiday.
func (r *Resolver) Range(ctx context.Context, from, to time.Time) ([]DayLabels, error) {
	var out []DayLabels
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parasha, _ := r.Parasha(ctx, day)
		holiday, _ := r.Holiday(ctx, day)
		if parasha == "" && holiday == "" {
			continue
		}
		out = append(out, DayLabels{
			Date:    day,
			ISO:     calendar.FormatISO(day),
			Parasha: parasha,
			Holiday: holiday,
		})
	}
	return out, nil
}
