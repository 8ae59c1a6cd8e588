// Package iometrics keeps Prometheus counters of herbdb operations and
// writes them to a node_exporter textfile collector file.
//
// All methods are safe to call on a nil *Metrics, which turns metrics
// off.
package iometrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "herbdb"

// Image lookup results.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Metrics holds collectors registered in a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	raceRecovery prometheus.Counter
	imageLookups *prometheus.CounterVec
}

// New creates collectors and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_operations_total",
			Help:      "Catalog write transactions by operation and status.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_operation_duration_seconds",
			Help:      "Duration of catalog write transactions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		raceRecovery: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_name_races_recovered_total",
			Help:      "Medicinal use inserts that lost a race and adopted the winner.",
		}),
		imageLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_lookups_total",
			Help:      "Plant image lookups by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.operations, m.durations, m.raceRecovery, m.imageLookups,
	)
	return m
}

// Observe records an outcome of a catalog operation.
func (m *Metrics) Observe(
	_ context.Context,
	operation string,
	success bool,
	duration time.Duration,
) {
	if m == nil || operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	m.operations.WithLabelValues(operation, status).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// RaceRecovered counts a recovered medicinal use name race.
func (m *Metrics) RaceRecovered() {
	if m == nil {
		return
	}
	m.raceRecovery.Inc()
}

// ImageLookup counts an image lookup by result.
func (m *Metrics) ImageLookup(result string) {
	if m == nil {
		return
	}
	m.imageLookups.WithLabelValues(result).Inc()
}

// Registry gives access to collected metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes metrics in text exposition format to path.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return WriteError(path, err)
	}
	return nil
}
