// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelrank/internal/recommend/feature"
	"github.com/tomtom215/reelrank/internal/recommend/resolve"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines per-category token repetition for feature documents.
	Weights feature.Weights `json:"weights"`

	// Resolver contains title resolution parameters.
	Resolver ResolverConfig `json:"resolver"`

	// Training contains training schedule parameters.
	Training TrainingConfig `json:"training"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ResolverConfig contains title resolution parameters.
type ResolverConfig struct {
	// FuzzyThreshold is the minimum trigram similarity for a fuzzy title
	// match. Requests may lower it per call, floored at 0.1.
	// Default: 0.30.
	FuzzyThreshold float64 `json:"fuzzy_threshold"`

	// SearchLimit is the default number of search results.
	// Default: 10.
	SearchLimit int `json:"search_limit"`

	// MaxSearchLimit is the maximum allowed search limit.
	// Default: 50.
	MaxSearchLimit int `json:"max_search_limit"`
}

// TrainingConfig contains training schedule parameters.
type TrainingConfig struct {
	// Interval is the time between scheduled training runs.
	// Default: 24h.
	Interval time.Duration `json:"interval"`

	// Timeout is the maximum time allowed for a training run.
	// Default: 5m.
	Timeout time.Duration `json:"timeout"`

	// RebuildMinInterval is the minimum time between manually triggered
	// rebuilds. Faster triggers are rejected.
	// Default: 1m.
	RebuildMinInterval time.Duration `json:"rebuild_min_interval"`

	// RetainVersions is the number of persisted model versions to retain.
	// Default: 3.
	RetainVersions int `json:"retain_versions"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the default number of recommendations to return.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 50.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: feature.Weights{
			Genres:        2,
			Directors:     2,
			Writers:       1,
			PrincipalCast: 1,
		},
		Resolver: ResolverConfig{
			FuzzyThreshold: resolve.DefaultThreshold,
			SearchLimit:    10,
			MaxSearchLimit: 50,
		},
		Training: TrainingConfig{
			Interval:           24 * time.Hour,
			Timeout:            5 * time.Minute,
			RebuildMinInterval: time.Minute,
			RetainVersions:     3,
		},
		Limits: LimitsConfig{
			DefaultK: 10,
			MaxK:     50,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Genres < 0 || c.Weights.Directors < 0 ||
		c.Weights.Writers < 0 || c.Weights.PrincipalCast < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.Weights.Genres+c.Weights.Directors+c.Weights.Writers+c.Weights.PrincipalCast == 0 {
		return fmt.Errorf("weights must enable at least one category")
	}

	if c.Resolver.FuzzyThreshold < resolve.MinThreshold || c.Resolver.FuzzyThreshold > resolve.MaxThreshold {
		return fmt.Errorf("resolver.fuzzy_threshold must be in [%g, %g], got %g",
			resolve.MinThreshold, resolve.MaxThreshold, c.Resolver.FuzzyThreshold)
	}
	if c.Resolver.SearchLimit < 1 {
		return fmt.Errorf("resolver.search_limit must be positive, got %d", c.Resolver.SearchLimit)
	}
	if c.Resolver.MaxSearchLimit < c.Resolver.SearchLimit {
		return fmt.Errorf("resolver.max_search_limit must be >= resolver.search_limit, got %d < %d",
			c.Resolver.MaxSearchLimit, c.Resolver.SearchLimit)
	}

	if c.Training.Interval < 0 {
		return fmt.Errorf("training.interval must be non-negative, got %v", c.Training.Interval)
	}
	if c.Training.Timeout <= 0 {
		return fmt.Errorf("training.timeout must be positive, got %v", c.Training.Timeout)
	}
	if c.Training.RebuildMinInterval < 0 {
		return fmt.Errorf("training.rebuild_min_interval must be non-negative, got %v", c.Training.RebuildMinInterval)
	}
	if c.Training.RetainVersions < 1 {
		return fmt.Errorf("training.retain_versions must be positive, got %d", c.Training.RetainVersions)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Weights:  c.Weights,
		Resolver: c.Resolver,
		Training: c.Training,
		Limits:   c.Limits,
	}
}
