// Package metrics exposes the Prometheus surface ShardedGraph and
// pkg/persistence optionally publish through, trimmed from the teacher's
// pkg/metrics Registry to the subset a storage engine (no HTTP layer,
// no replication, no cluster) can actually populate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric this module registers. OperationDuration and
// ShardLockWaitSeconds are registered but nothing in this module observes
// them; the other metrics are updated by pkg/sharded and pkg/persistence.
type Registry struct {
	VerticesTotal   *prometheus.GaugeVec
	EdgesTotal      *prometheus.GaugeVec
	OperationsTotal *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	ShardLockWaitSeconds *prometheus.HistogramVec
	SnapshotDurationSeconds *prometheus.HistogramVec
	SnapshotBytesTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry builds a Registry with every metric registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.init()
	return r
}

// PrometheusRegistry returns the underlying collector registry, for
// mounting on an HTTP /metrics endpoint by the embedding application.
func (r *Registry) PrometheusRegistry() *prometheus.Registry { return r.registry }
