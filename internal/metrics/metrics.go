// Package metrics defines Prometheus metrics for the relevance graph service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubgraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubgraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubgraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ArticleCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubgraph_articles_total",
			Help: "Articles currently in the graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubgraph_edges_total",
			Help: "Edges currently in the graph",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubgraph_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	SnapshotsArchived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clubgraph_snapshots_archived_total",
			Help: "Graph snapshots written to the archive",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ArticleCount, EdgeCount, WSConnections,
		SnapshotsArchived,
	)
}
