package eventbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonError = "error"
	reasonPanic = "panic"
)

var (
	eventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_events_published_total",
			Help: "Total number of delivery events dispatched to subscribers",
		},
		[]string{"type"},
	)

	sideEffectFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_side_effect_failures_total",
			Help: "Total number of failed post-commit side effects",
		},
		[]string{"subscriber", "reason"},
	)

	dispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_events_dispatch_duration_seconds",
			Help:    "Time spent running all subscribers for one event",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"type"},
	)
)
