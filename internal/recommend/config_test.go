// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"testing"
	"time"

	"github.com/tomtom215/reelrank/internal/recommend/resolve"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("validates cleanly", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("weights enable all categories", func(t *testing.T) {
		if cfg.Weights.Genres <= 0 {
			t.Errorf("Weights.Genres = %d, want > 0", cfg.Weights.Genres)
		}
		if cfg.Weights.Directors <= 0 {
			t.Errorf("Weights.Directors = %d, want > 0", cfg.Weights.Directors)
		}
		if cfg.Weights.Writers <= 0 {
			t.Errorf("Weights.Writers = %d, want > 0", cfg.Weights.Writers)
		}
		if cfg.Weights.PrincipalCast <= 0 {
			t.Errorf("Weights.PrincipalCast = %d, want > 0", cfg.Weights.PrincipalCast)
		}
	})

	t.Run("resolver threshold matches package default", func(t *testing.T) {
		if cfg.Resolver.FuzzyThreshold != resolve.DefaultThreshold {
			t.Errorf("Resolver.FuzzyThreshold = %g, want %g", cfg.Resolver.FuzzyThreshold, resolve.DefaultThreshold)
		}
	})

	t.Run("training config has valid defaults", func(t *testing.T) {
		if cfg.Training.Interval <= 0 {
			t.Errorf("Training.Interval = %v, want > 0", cfg.Training.Interval)
		}
		if cfg.Training.Timeout <= 0 {
			t.Errorf("Training.Timeout = %v, want > 0", cfg.Training.Timeout)
		}
		if cfg.Training.RetainVersions <= 0 {
			t.Errorf("Training.RetainVersions = %d, want > 0", cfg.Training.RetainVersions)
		}
	})

	t.Run("limits config has valid defaults", func(t *testing.T) {
		if cfg.Limits.DefaultK != 10 {
			t.Errorf("Limits.DefaultK = %d, want 10", cfg.Limits.DefaultK)
		}
		if cfg.Limits.MaxK < cfg.Limits.DefaultK {
			t.Errorf("Limits.MaxK = %d, want >= DefaultK (%d)", cfg.Limits.MaxK, cfg.Limits.DefaultK)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "negative genre weight",
			modify:    func(c *Config) { c.Weights.Genres = -1 },
			wantError: true,
		},
		{
			name: "all weights zero",
			modify: func(c *Config) {
				c.Weights.Genres = 0
				c.Weights.Directors = 0
				c.Weights.Writers = 0
				c.Weights.PrincipalCast = 0
			},
			wantError: true,
		},
		{
			name:      "fuzzy threshold below floor",
			modify:    func(c *Config) { c.Resolver.FuzzyThreshold = 0.05 },
			wantError: true,
		},
		{
			name:      "fuzzy threshold above one",
			modify:    func(c *Config) { c.Resolver.FuzzyThreshold = 1.5 },
			wantError: true,
		},
		{
			name:      "zero search limit",
			modify:    func(c *Config) { c.Resolver.SearchLimit = 0 },
			wantError: true,
		},
		{
			name:      "max search limit below default",
			modify:    func(c *Config) { c.Resolver.SearchLimit = 20; c.Resolver.MaxSearchLimit = 10 },
			wantError: true,
		},
		{
			name:      "negative training interval",
			modify:    func(c *Config) { c.Training.Interval = -time.Hour },
			wantError: true,
		},
		{
			name:      "zero training timeout",
			modify:    func(c *Config) { c.Training.Timeout = 0 },
			wantError: true,
		},
		{
			name:      "zero retain versions",
			modify:    func(c *Config) { c.Training.RetainVersions = 0 },
			wantError: true,
		},
		{
			name:      "zero default K",
			modify:    func(c *Config) { c.Limits.DefaultK = 0 },
			wantError: true,
		},
		{
			name:      "MaxK less than DefaultK",
			modify:    func(c *Config) { c.Limits.MaxK = 5; c.Limits.DefaultK = 10 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	original.Weights.Genres = 7
	original.Training.Interval = 48 * time.Hour

	clone := original.Clone()

	t.Run("clone has same values", func(t *testing.T) {
		if clone.Weights.Genres != original.Weights.Genres {
			t.Errorf("clone.Weights.Genres = %d, want %d", clone.Weights.Genres, original.Weights.Genres)
		}
		if clone.Training.Interval != original.Training.Interval {
			t.Errorf("clone.Training.Interval = %v, want %v", clone.Training.Interval, original.Training.Interval)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		clone.Weights.Genres = 99
		if original.Weights.Genres == clone.Weights.Genres {
			t.Error("modifying clone affected original")
		}
	})
}
