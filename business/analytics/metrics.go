package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsTrackedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_tracked_total",
			Help: "Count of behavioral events recorded, by event type.",
		},
		[]string{"event_type"},
	)

	EventsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_dropped_total",
			Help: "Count of behavioral events dropped due to storage failures.",
		},
	)
)

func init() {
	prometheus.MustRegister(EventsTrackedTotal, EventsDroppedTotal)
}
