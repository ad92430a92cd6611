package metrics

import "github.com/prometheus/client_golang/prometheus"

// Site Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dunerides",
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"outcome"}, // "blank" / "hit" / "miss"
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dunerides",
			Name:      "search_results",
			Help:      "Number of results returned per non-blank query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	WeatherCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dunerides",
			Name:      "weather_calls_total",
			Help:      "Weather accessor calls",
		},
		[]string{"accessor", "status"},
	)

	GuardDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dunerides",
			Name:      "guard_decisions_total",
			Help:      "Access guard decisions",
		},
		[]string{"requirement", "state"},
	)
)

var siteMetricsRegistered bool

// RegisterSiteMetrics registers site Prometheus metrics. Must be called once from main.
func RegisterSiteMetrics() {
	if siteMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(WeatherCallsTotal)
	prometheus.MustRegister(GuardDecisionsTotal)
	siteMetricsRegistered = true
}
