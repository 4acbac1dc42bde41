// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PairingQueries counts pairing queries by direction and the strategy that answered them
	PairingQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winepair_pairing_queries_total",
			Help: "Total pairing queries by direction and answering strategy",
		},
		[]string{"direction", "strategy"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winepair_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "winepair_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CatalogSize reports the number of loaded catalog entries by kind
	CatalogSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "winepair_catalog_entries",
			Help: "Number of loaded catalog entries by kind",
		},
		[]string{"kind"},
	)
)

// RecordPairingQuery increments the query counter for a direction and strategy
func RecordPairingQuery(direction, strategy string) {
	PairingQueries.WithLabelValues(direction, strategy).Inc()
}

// RecordCatalogSize publishes the catalog dimensions
func RecordCatalogSize(wines, foods, keywords int) {
	CatalogSize.WithLabelValues("wine").Set(float64(wines))
	CatalogSize.WithLabelValues("food").Set(float64(foods))
	CatalogSize.WithLabelValues("keyword").Set(float64(keywords))
}
