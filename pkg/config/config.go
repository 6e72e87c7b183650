// Package config loads the settings that construct a ShardedGraph: shard
// count, snapshot directory, snapshot compression, log level and metrics
// toggle. Validation is
// struct-tag driven via go-playground/validator, grounded on the
// teacher's pkg/validation package.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for constructing a graph.
type Config struct {
	// ShardCount is the fixed number of shards the graph is partitioned
	// into; it cannot change after a graph is constructed or loaded.
	ShardCount int `yaml:"shard_count" validate:"required,min=1,max=4096"`

	// DataDir names the snapshot directory. pkg/persistence's Save/Load
	// take their directory as an argument and do not read this field.
	DataDir string `yaml:"data_dir" validate:"required"`

	// SnapshotCompression names a shard-file codec; only "snappy" and
	// "none" pass validation. pkg/persistence does not read this field and
	// always writes and reads snappy-compressed shard files.
	SnapshotCompression string `yaml:"snapshot_compression" validate:"required,oneof=snappy none"`

	// LogLevel is the minimum level the default JSON logger emits.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// MetricsEnabled toggles whether a prometheus Registry is attached.
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

var validate = validator.New()

// Default returns a single-shard, snappy-compressed, info-logged configuration.
func Default() Config {
	return Config{
		ShardCount:          1,
		DataDir:             "./tgraph-data",
		SnapshotCompression: "snappy",
		LogLevel:            "info",
		MetricsEnabled:      false,
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct-tag constraints on c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
