package liturgy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts resolver cache traffic and schedule failures.
type Metrics struct {
	CacheLookups *prometheus.CounterVec
	Failures     *prometheus.CounterVec
	ComputeTime  *prometheus.HistogramVec
}

// NewMetrics registers the resolver metrics on reg. A nil reg leaves the
// metrics unregistered, which is what tests and one-shot commands want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "luach",
				Subsystem: "liturgy",
				Name:      "cache_total",
				Help:      "Resolver cache lookups by label kind and result",
			},
			[]string{"kind", "result"}, // result is hit or miss
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "luach",
				Subsystem: "liturgy",
				Name:      "failures_total",
				Help:      "Schedule lookups that failed and were reported as no label",
			},
			[]string{"kind"},
		),
		ComputeTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "luach",
				Subsystem: "liturgy",
				Name:      "compute_seconds",
				Help:      "Time spent computing labels on cache misses",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"kind"},
		),
	}
}
