package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Count of recommendation requests served from the result cache.",
		},
	)
)

func init() {
	prometheus.MustRegister(CacheHitsTotal)
}
