// Package config loads the tracker's application configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// API server configuration
	Server ServerConfig `toml:"server"`

	// Knowledge-base source configuration
	Knowledge KnowledgeConfig `toml:"knowledge"`

	// Batch resolution configuration
	Pipeline PipelineConfig `toml:"pipeline"`
}

// ServerConfig contains REST API server settings.
type ServerConfig struct {
	Port            int     `toml:"port"`               // Listen port
	RateLimitPerSec float64 `toml:"rate_limit_per_sec"` // Resolve requests per second
	RateBurst       int     `toml:"rate_burst"`         // Burst allowance
}

// KnowledgeConfig points the engine at its table source.
type KnowledgeConfig struct {
	FilePath string `toml:"file_path"` // TOML knowledge file; empty = compiled-in defaults
	Watch    bool   `toml:"watch"`     // Reload tables when the file changes
}

// PipelineConfig contains batch resolution settings.
type PipelineConfig struct {
	Workers int `toml:"workers"` // Concurrent resolutions per batch
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			RateLimitPerSec: 50,
			RateBurst:       100,
		},
		Knowledge: KnowledgeConfig{
			FilePath: "",
			Watch:    false,
		},
		Pipeline: PipelineConfig{
			Workers: 8,
		},
	}
}

// Load loads the configuration from path. An empty path returns the
// default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitPerSec <= 0 {
		return fmt.Errorf("rate limit must be positive: %v", c.Server.RateLimitPerSec)
	}
	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("rate burst must be positive: %d", c.Server.RateBurst)
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline workers cannot be negative: %d", c.Pipeline.Workers)
	}
	if c.Knowledge.Watch && c.Knowledge.FilePath == "" {
		return fmt.Errorf("knowledge watch enabled without a file path")
	}
	return nil
}
