package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_latency_seconds",
		Help:    "Latency of the recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total recommendation requests served, per strategy
	RecommendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by strategy",
		},
		[]string{"strategy"},
	)

	// Requests that produced an empty result set
	RecommendEmptyResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_empty_results_total",
			Help: "Recommendation requests that returned no products",
		},
		[]string{"strategy"},
	)
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendEmptyResults,
	)
}
