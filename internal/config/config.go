// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package config provides layered configuration for Reelrank.
//
// Configuration is loaded in three layers with clear precedence:
//
//	environment variables > YAML config file > built-in defaults
//
// See Load for the loading entry point.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Reelrank server.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Logging    LoggingConfig    `koanf:"logging"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Resolver   ResolverConfig   `koanf:"resolver"`
	ModelStore ModelStoreConfig `koanf:"model_store"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string          `koanf:"host"`
	Port            int             `koanf:"port"`
	ReadTimeout     time.Duration   `koanf:"read_timeout"`
	WriteTimeout    time.Duration   `koanf:"write_timeout"`
	IdleTimeout     time.Duration   `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration   `koanf:"shutdown_timeout"`
	CORSOrigins     []string        `koanf:"cors_origins"`
	RateLimit       RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds per-IP HTTP rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool `koanf:"enabled"`
	RequestsPerMinute int  `koanf:"requests_per_minute"`
}

// DatabaseConfig holds DuckDB corpus store settings.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Parent directories are created on open.
	Path string `koanf:"path"`

	// DatasetPath is the CSV/TSV movie dataset ingested when the movies table
	// is empty. Optional when the database file already holds a catalog.
	DatasetPath string `koanf:"dataset_path"`

	// Threads for DuckDB query execution. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`

	// MaxMemory is the DuckDB memory cap, e.g. "2GB".
	MaxMemory string `koanf:"max_memory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	Weights            WeightsConfig `koanf:"weights"`
	DefaultK           int           `koanf:"default_k"`
	MaxK               int           `koanf:"max_k"`
	TrainOnStartup     bool          `koanf:"train_on_startup"`
	TrainInterval      time.Duration `koanf:"train_interval"`
	RebuildMinInterval time.Duration `koanf:"rebuild_min_interval"`
}

// WeightsConfig holds per-category feature repetition weights. A weight of N
// repeats every token of that category N times in the feature document; 0
// removes the category from the model entirely.
type WeightsConfig struct {
	Genres        int `koanf:"genres"`
	Directors     int `koanf:"directors"`
	Writers       int `koanf:"writers"`
	PrincipalCast int `koanf:"principal_cast"`
}

// ResolverConfig holds title resolution settings.
type ResolverConfig struct {
	// FuzzyThreshold is the minimum trigram similarity for a fuzzy title
	// match, in [0.1, 1.0].
	FuzzyThreshold float64 `koanf:"fuzzy_threshold"`

	SearchLimit    int `koanf:"search_limit"`
	MaxSearchLimit int `koanf:"max_search_limit"`
}

// ModelStoreConfig holds persisted model snapshot settings.
type ModelStoreConfig struct {
	Enabled bool `koanf:"enabled"`

	// Path is the Badger directory holding serialized model snapshots.
	Path string `koanf:"path"`

	// KeepVersions is how many historical snapshots to retain after a build.
	KeepVersions int `koanf:"keep_versions"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	if err := c.Resolver.Validate(); err != nil {
		return err
	}
	return c.ModelStore.Validate()
}

// Validate checks server settings.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %v", c.ReadTimeout)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %v", c.WriteTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", c.ShutdownTimeout)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("server.rate_limit.requests_per_minute must be positive, got %d",
			c.RateLimit.RequestsPerMinute)
	}
	return nil
}

// Validate checks database settings.
func (c *DatabaseConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Threads)
	}
	return nil
}

// Validate checks logging settings.
func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Format)
	}
	return nil
}

// Validate checks recommendation engine settings.
func (c *RecommendConfig) Validate() error {
	if c.Weights.Genres < 0 || c.Weights.Directors < 0 ||
		c.Weights.Writers < 0 || c.Weights.PrincipalCast < 0 {
		return fmt.Errorf("recommend.weights must not be negative")
	}
	if c.Weights.Genres+c.Weights.Directors+c.Weights.Writers+c.Weights.PrincipalCast == 0 {
		return fmt.Errorf("recommend.weights must enable at least one category")
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("recommend.default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("recommend.max_k must be >= default_k (%d), got %d", c.DefaultK, c.MaxK)
	}
	if c.TrainInterval <= 0 {
		return fmt.Errorf("recommend.train_interval must be positive, got %v", c.TrainInterval)
	}
	if c.RebuildMinInterval < 0 {
		return fmt.Errorf("recommend.rebuild_min_interval must not be negative, got %v", c.RebuildMinInterval)
	}
	return nil
}

// Validate checks resolver settings.
func (c *ResolverConfig) Validate() error {
	if c.FuzzyThreshold < 0.1 || c.FuzzyThreshold > 1.0 {
		return fmt.Errorf("resolver.fuzzy_threshold must be in [0.1, 1.0], got %g", c.FuzzyThreshold)
	}
	if c.SearchLimit < 1 {
		return fmt.Errorf("resolver.search_limit must be positive, got %d", c.SearchLimit)
	}
	if c.MaxSearchLimit < c.SearchLimit {
		return fmt.Errorf("resolver.max_search_limit must be >= search_limit (%d), got %d",
			c.SearchLimit, c.MaxSearchLimit)
	}
	return nil
}

// Validate checks model store settings.
func (c *ModelStoreConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Path == "" {
		return fmt.Errorf("model_store.path must not be empty when model_store.enabled is true")
	}
	if c.KeepVersions < 1 {
		return fmt.Errorf("model_store.keep_versions must be positive, got %d", c.KeepVersions)
	}
	return nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from defaults, an optional config file, and
// environment variables. See LoadWithKoanf for the layering details.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
