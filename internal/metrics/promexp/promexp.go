// Package promexp implements a Prometheus exposition backend for the
// metrics package.
//
// It adapts the generic metrics.Backend interface to Prometheus by:
//
//   - Using client_golang CounterVec and SummaryVec collectors.
//   - Mapping the catalog labels (source, status, kind, op) onto Prometheus
//     labels.
//   - Exposing a scrape handler instead of pushing, since the explorer is a
//     long-lived server with its own HTTP mux.
//
// All Prometheus-specific dependencies live here so the rest of the project
// stays decoupled from the concrete metrics system.
package promexp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dolat-Hamza/healf/internal/metrics"
)

// Backend is a Prometheus scrape-endpoint metrics backend.
type Backend struct {
	reg *prometheus.Registry

	loadCounter  *prometheus.CounterVec // "catalog_load_total"
	loadDuration *prometheus.SummaryVec // "catalog_load_duration_seconds"

	rowCounter *prometheus.CounterVec // "catalog_rows_total"

	queryCounter  *prometheus.CounterVec // "catalog_query_total"
	queryDuration *prometheus.SummaryVec // "catalog_query_duration_seconds"
}

// NewBackend constructs a Backend with a private registry; nothing is
// registered globally.
func NewBackend() (*Backend, error) {
	reg := prometheus.NewRegistry()

	loadCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_total",
			Help: "Total dataset load attempts, partitioned by source kind and status.",
		},
		[]string{"source", "status"},
	)
	loadDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "catalog_load_duration_seconds",
			Help:       "Duration of dataset loads in seconds, partitioned by source kind and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"source", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_total",
			Help: "Row-level counts per kind (parsed, mapped, valid, invalid).",
		},
		[]string{"kind"},
	)
	queryCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_total",
			Help: "Total query-engine calls, partitioned by operation.",
		},
		[]string{"op"},
	)
	queryDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "catalog_query_duration_seconds",
			Help:       "Duration of query-engine calls in seconds, partitioned by operation.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"op"},
	)

	for _, c := range []prometheus.Collector{
		loadCounter, loadDuration, rowCounter, queryCounter, queryDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &Backend{
		reg:           reg,
		loadCounter:   loadCounter,
		loadDuration:  loadDuration,
		rowCounter:    rowCounter,
		queryCounter:  queryCounter,
		queryDuration: queryDuration,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "catalog_load_total":
		b.loadCounter.WithLabelValues(labels["source"], labels["status"]).Add(delta)
	case "catalog_rows_total":
		b.rowCounter.WithLabelValues(labels["kind"]).Add(delta)
	case "catalog_query_total":
		b.queryCounter.WithLabelValues(labels["op"]).Add(delta)
	default:
		// unknown metric name: ignore
	}
}

func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	switch name {
	case "catalog_load_duration_seconds":
		b.loadDuration.WithLabelValues(labels["source"], labels["status"]).Observe(value)
	case "catalog_query_duration_seconds":
		b.queryDuration.WithLabelValues(labels["op"]).Observe(value)
	}
}

// Flush is a no-op; scraping pulls the registry on demand.
func (b *Backend) Flush() error { return nil }

// Handler returns the scrape endpoint for this backend's registry.
func (b *Backend) Handler() http.Handler {
	return promhttp.HandlerFor(b.reg, promhttp.HandlerOpts{})
}
