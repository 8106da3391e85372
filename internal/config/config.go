// Package config loads the environment-driven settings of the matfan binaries.
package config

import (
	"fmt"
	"time"

	"github.com/katalvlaran/matfan/fanin"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every variable, e.g. MATFAN_PRODUCERS.
const Prefix = "MATFAN"

// Config holds all application configuration.
type Config struct {
	FanIn   FanInConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// FanInConfig tunes the producer/consumer demo.
type FanInConfig struct {
	Producers int           `envconfig:"PRODUCERS" default:"4"`
	Interval  time.Duration `envconfig:"INTERVAL" default:"1s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds the optional Prometheus listener. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `envconfig:"METRICS_ADDR"`
}

// Load reads configuration from MATFAN_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	// Sections are processed one by one so keys stay flat (MATFAN_PRODUCERS,
	// not MATFAN_FANIN_PRODUCERS).
	for _, section := range []any{&cfg.FanIn, &cfg.Logging, &cfg.Metrics} {
		if err := envconfig.Process(Prefix, section); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		FanIn: FanInConfig{
			Producers: fanin.DefaultProducers,
			Interval:  fanin.DefaultInterval,
		},
		Logging: LogConfig{Level: "info"},
	}
}

// Validate rejects values the demo cannot run with.
func (c *Config) Validate() error {
	if c.FanIn.Producers <= 0 {
		return fmt.Errorf("config: %s_PRODUCERS must be > 0, got %d", Prefix, c.FanIn.Producers)
	}
	if c.FanIn.Interval <= 0 {
		return fmt.Errorf("config: %s_INTERVAL must be > 0, got %s", Prefix, c.FanIn.Interval)
	}

	return nil
}
