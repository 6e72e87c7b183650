package sharded

import (
	"os"

	"github.com/dd0wney/tgraph/pkg/config"
	"github.com/dd0wney/tgraph/pkg/logging"
	"github.com/dd0wney/tgraph/pkg/metrics"
)

// NewFromConfig builds a ShardedGraph from a validated Config: shard
// count, a JSON logger at LogLevel, and a prometheus Registry when
// MetricsEnabled is set.
func NewFromConfig(cfg config.Config) (*ShardedGraph, *metrics.Registry) {
	opts := []Option{WithLogger(logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel)))}

	var reg *metrics.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
		opts = append(opts, WithMetrics(reg))
	}

	return New(cfg.ShardCount, opts...), reg
}
