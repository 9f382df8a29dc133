// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ModelEngine is the slice of the recommendation engine the retrain
// service drives. A local interface keeps this package decoupled from
// the engine implementation.
type ModelEngine interface {
	// Ready reports whether a model snapshot is installed.
	Ready() bool

	// Train builds a fresh snapshot and installs it.
	Train(ctx context.Context) error

	// LoadFromStore installs the most recently persisted snapshot.
	LoadFromStore(ctx context.Context) error

	// SetNextTraining records when the next scheduled run happens, for
	// the status endpoint.
	SetNextTraining(t time.Time)
}

// RetrainConfig holds configuration for the retrain service.
type RetrainConfig struct {
	// RestoreOnStartup attempts to install a persisted snapshot before
	// anything else. Failure is not fatal; a first boot has nothing to
	// restore.
	RestoreOnStartup bool

	// TrainOnStartup builds a model at startup when restore left the
	// engine without one.
	TrainOnStartup bool

	// Interval is how often to rebuild the model from the corpus.
	// Default: 24h.
	Interval time.Duration
}

// RetrainService owns the model lifecycle under supervision: snapshot
// restore at startup, an initial build when no snapshot exists, and
// periodic rebuilds thereafter. The HTTP layer keeps serving whatever
// snapshot is installed while this service works.
type RetrainService struct {
	engine ModelEngine
	config RetrainConfig
	logger zerolog.Logger
	name   string
}

// NewRetrainService creates the model lifecycle service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRetrainService(engine ModelEngine, cfg RetrainConfig, logger zerolog.Logger) *RetrainService {
	return &RetrainService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "retrain").Logger(),
		name:   "retrain-service",
	}
}

// Serve implements suture.Service. It restores or builds the initial
// model, then rebuilds on the configured interval until the context is
// canceled. Training failures are logged and retried on the next tick;
// the previously installed snapshot keeps serving.
func (s *RetrainService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("restore_on_startup", s.config.RestoreOnStartup).
		Bool("train_on_startup", s.config.TrainOnStartup).
		Dur("train_interval", s.config.Interval).
		Msg("retrain service starting")

	if s.config.RestoreOnStartup {
		if err := s.engine.LoadFromStore(ctx); err != nil {
			s.logger.Info().Err(err).Msg("no model snapshot restored")
		}
	}

	if s.config.TrainOnStartup && !s.engine.Ready() {
		s.logger.Info().Msg("no model installed, training on startup")
		if err := s.engine.Train(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial training failed (will retry on schedule)")
		}
	}

	interval := s.config.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.engine.SetNextTraining(time.Now().Add(interval))
	s.logger.Info().Msg("retrain service running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("retrain service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.logger.Debug().Msg("scheduled training triggered")
			if err := s.engine.Train(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled training failed")
			}
			s.engine.SetNextTraining(time.Now().Add(interval))
		}
	}
}

// String returns the service name for logging.
func (s *RetrainService) String() string {
	return s.name
}
