// Package observability exposes the session counters scraped by Prometheus.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chat_sdk"

type Metrics struct {
	EventsDispatched *prometheus.CounterVec
	EventsDropped    *prometheus.CounterVec
	Fetches          prometheus.Counter
	FetchFailures    prometheus.Counter
	FetchDuration    prometheus.Histogram
	UnreadIncrements prometheus.Counter
	InlineRenders    prometheus.Counter
}

// NewMetrics registers every collector on reg. Tests pass a fresh
// prometheus.NewRegistry() so instances never collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dispatched_total",
			Help:      "Inbound transport events handled by the dispatcher.",
		}, []string{"kind"}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Inbound events discarded before or during dispatch.",
		}, []string{"kind", "reason"}),
		Fetches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialog_fetches_total",
			Help:      "Remote dialog lookups issued.",
		}),
		FetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialog_fetch_failures_total",
			Help:      "Remote dialog lookups that failed after every retry.",
		}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dialog_fetch_duration_seconds",
			Help:      "Duration of remote dialog lookups, retries included.",
			Buckets:   prometheus.DefBuckets,
		}),
		UnreadIncrements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unread_increments_total",
			Help:      "Messages counted as unread.",
		}),
		InlineRenders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inline_renders_total",
			Help:      "Messages rendered in the open dialog.",
		}),
	}
}
