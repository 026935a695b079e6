// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the catalog explorer.
//
// The package is intentionally minimal and opinionated:
//
//   - It exposes a narrow interface (Backend) focused on counters and timing
//     data.
//   - It provides a global, pluggable backend that defaults to a no-op
//     implementation, so metrics are always safe to call even when no real
//     backend is configured.
//   - Concrete metric systems stay isolated in subpackages; the rest of the
//     codebase depends only on this interface.
//
// The primary use case is instrumenting dataset loads and query handlers
// without coupling them to a specific metrics system.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it.
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordLoad measures one dataset load attempt: latency plus a
// success/failure counter, labeled by the source kind ("upload", "file",
// "url").
func RecordLoad(source string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"source": source,
		"status": status,
	}

	backend.IncCounter("catalog_load_total", 1, lbls)
	backend.ObserveHistogram("catalog_load_duration_seconds", d.Seconds(), lbls)
}

// RecordRows increments a row-level counter for a load.
//
// Typical kinds mirror the validation summary fields, e.g.:
//   - "parsed"
//   - "mapped"
//   - "valid"
//   - "invalid"
func RecordRows(kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("catalog_rows_total", float64(delta), Labels{
		"kind": kind,
	})
}

// RecordQuery measures one query-engine call (search, facets, suggest,
// validate), labeled by operation.
func RecordQuery(op string, d time.Duration) {
	lbls := Labels{"op": op}
	backend.IncCounter("catalog_query_total", 1, lbls)
	backend.ObserveHistogram("catalog_query_duration_seconds", d.Seconds(), lbls)
}
