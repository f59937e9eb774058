package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/roach88/cardsearch/internal/logger"
)

// Load reads the configuration from CARDSEARCH_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that envconfig cannot express.
func (c *Config) Validate() error {
	if c.Search.ResultLimit < 1 {
		return fmt.Errorf("invalid configuration: result limit must be positive, got %d", c.Search.ResultLimit)
	}
	if c.Search.ScanWorkers < 1 {
		return fmt.Errorf("invalid configuration: scan workers must be positive, got %d", c.Search.ScanWorkers)
	}
	if c.Search.PartitionSize < 1 {
		return fmt.Errorf("invalid configuration: partition size must be positive, got %d", c.Search.PartitionSize)
	}
	switch c.Logging.Format {
	case logger.ConsoleLoggingFormat, logger.JSONLoggingFormat:
	default:
		return fmt.Errorf("invalid configuration: unknown log format %q", c.Logging.Format)
	}
	return nil
}
