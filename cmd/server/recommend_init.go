// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package main

import (
	"fmt"

	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/database"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/recommend"
	"github.com/tomtom215/reelrank/internal/recommend/feature"
	"github.com/tomtom215/reelrank/internal/recommend/store"
	"github.com/tomtom215/reelrank/internal/supervisor"
	"github.com/tomtom215/reelrank/internal/supervisor/services"
)

// RecommendComponents holds all recommendation-related components.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Store   *store.Store
	Service *services.RetrainService
}

// Close releases the model store. The engine itself holds no resources
// beyond the snapshot pointer.
func (c *RecommendComponents) Close() {
	if c.Store == nil {
		return
	}
	if err := c.Store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing model store")
	}
}

// initRecommend builds the recommendation engine, attaches the snapshot
// store when enabled, and registers the retrain service with the model
// layer of the supervisor tree. The engine itself is returned for the
// HTTP handlers; training runs under supervision.
func initRecommend(cfg *config.Config, db *database.DB, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	logger := logging.WithComponent("recommend")

	logger.Info().
		Dur("train_interval", cfg.Recommend.TrainInterval).
		Bool("train_on_startup", cfg.Recommend.TrainOnStartup).
		Int("default_k", cfg.Recommend.DefaultK).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(db, buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	components := &RecommendComponents{Engine: engine}

	// Snapshot persistence is best-effort: a broken store directory
	// degrades to in-memory models instead of refusing to start.
	restoreOnStartup := false
	if cfg.ModelStore.Enabled {
		st, err := store.New(cfg.ModelStore.Path, logger)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.ModelStore.Path).
				Msg("model store unavailable, snapshots will not persist")
		} else {
			engine.SetModelStore(st)
			components.Store = st
			restoreOnStartup = true
			logger.Info().Str("path", cfg.ModelStore.Path).
				Int("keep_versions", cfg.ModelStore.KeepVersions).
				Msg("model store attached")
		}
	}

	service := services.NewRetrainService(engine, services.RetrainConfig{
		RestoreOnStartup: restoreOnStartup,
		TrainOnStartup:   cfg.Recommend.TrainOnStartup,
		Interval:         cfg.Recommend.TrainInterval,
	}, logger)
	components.Service = service

	tree.AddModelService(service)
	logger.Info().Msg("retrain service added to supervisor tree")

	return components, nil
}

// buildEngineConfig maps application configuration onto the engine
// configuration, keeping engine defaults for anything the app config
// does not expose.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()

	engineCfg.Weights = feature.Weights{
		Genres:        cfg.Recommend.Weights.Genres,
		Directors:     cfg.Recommend.Weights.Directors,
		Writers:       cfg.Recommend.Weights.Writers,
		PrincipalCast: cfg.Recommend.Weights.PrincipalCast,
	}
	engineCfg.Resolver = recommend.ResolverConfig{
		FuzzyThreshold: cfg.Resolver.FuzzyThreshold,
		SearchLimit:    cfg.Resolver.SearchLimit,
		MaxSearchLimit: cfg.Resolver.MaxSearchLimit,
	}
	engineCfg.Limits = recommend.LimitsConfig{
		DefaultK: cfg.Recommend.DefaultK,
		MaxK:     cfg.Recommend.MaxK,
	}
	engineCfg.Training.Interval = cfg.Recommend.TrainInterval
	engineCfg.Training.RebuildMinInterval = cfg.Recommend.RebuildMinInterval
	engineCfg.Training.RetainVersions = cfg.ModelStore.KeepVersions

	return engineCfg
}
