package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) init() {
	r.VerticesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tgraph_vertices_total",
			Help: "Number of interned vertices, by shard",
		},
		[]string{"shard"},
	)

	r.EdgesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tgraph_edges_total",
			Help: "Number of minted edge ids, by shard",
		},
		[]string{"shard"},
	)

	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgraph_operations_total",
			Help: "Graph operations processed, by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tgraph_operation_duration_seconds",
			Help:    "Graph operation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"operation"},
	)

	r.ShardLockWaitSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tgraph_shard_lock_wait_seconds",
			Help:    "Time spent waiting to acquire a shard lock",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"shard", "mode"},
	)

	r.SnapshotDurationSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tgraph_snapshot_duration_seconds",
			Help:    "Save/load duration of a full snapshot",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
		},
		[]string{"direction"},
	)

	r.SnapshotBytesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgraph_snapshot_bytes_total",
			Help: "Bytes written or read across all shard snapshot files",
		},
		[]string{"direction"},
	)
}
