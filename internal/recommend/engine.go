// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelrank/internal/metrics"
	"github.com/tomtom215/reelrank/internal/models"
)

// minQueryRunes is the minimum trimmed length of a title or search query.
const minQueryRunes = 2

// Engine serves recommendations and title search from an immutable model
// snapshot and rebuilds that snapshot from the movie catalog on demand.
// It is safe for concurrent use: requests read the snapshot through an
// atomic pointer and never block on training.
type Engine struct {
	config *Config
	logger zerolog.Logger

	provider DataProvider
	store    ModelStore

	// model is the active snapshot. Nil until the first successful
	// build or restore.
	model atomic.Pointer[Model]

	// trainMu serializes builds. TryLock turns a concurrent build
	// attempt into ErrTrainingInProgress instead of a queue.
	trainMu sync.Mutex

	statusMu sync.Mutex
	status   TrainingStatus

	// rebuildLimiter throttles manually triggered rebuilds.
	// Nil disables throttling.
	rebuildLimiter *rate.Limiter
}

// NewEngine creates a recommendation engine reading its corpus from provider.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(provider DataProvider, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("data provider is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		provider: provider,
	}
	if cfg.Training.RebuildMinInterval > 0 {
		e.rebuildLimiter = rate.NewLimiter(rate.Every(cfg.Training.RebuildMinInterval), 1)
	}

	return e, nil
}

// SetModelStore enables snapshot persistence. Must be called before the
// engine starts serving or training.
func (e *Engine) SetModelStore(s ModelStore) {
	e.store = s
}

// Ready reports whether a model snapshot is installed and serving.
func (e *Engine) Ready() bool {
	return e.model.Load() != nil
}

// Recommend resolves the requested title against the active snapshot and
// returns the most similar movies by TF-IDF cosine similarity. The queried
// movie itself is never part of the result.
func (e *Engine) Recommend(ctx context.Context, req RecommendRequest) (*models.RecommendResponse, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	}()

	model := e.model.Load()
	if model == nil {
		return nil, ErrModelNotLoaded
	}

	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < minQueryRunes {
		return nil, ErrEmptyQuery
	}

	match, ok := model.resolver.Resolve(title, req.Fuzzy, req.MinSimilarity)
	if !ok {
		metrics.RecordResolveOutcome(metrics.ResolveNotFound)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, req.Title)
	}
	e.recordResolve(match.Exact)

	recs, err := e.similarTo(ctx, model, match.Row, e.clampK(req.K))
	if err != nil {
		return nil, fmt.Errorf("rank similar movies: %w", err)
	}

	e.logger.Debug().
		Str("title", req.Title).
		Str("resolved", match.Title).
		Bool("exact", match.Exact).
		Int("returned", len(recs)).
		Msg("recommendation complete")

	return &models.RecommendResponse{
		Title:           match.Title,
		QueryTitle:      req.Title,
		Recommendations: recs,
	}, nil
}

// similarTo ranks every other movie against the snapshot row and converts
// the top k into response items.
func (e *Engine) similarTo(ctx context.Context, model *Model, row, k int) ([]models.RecommendedMovie, error) {
	query := model.Rows[row]
	if query.IsZero() {
		// A movie with no usable metadata has an all-zero vector and
		// matches nothing.
		return []models.RecommendedMovie{}, nil
	}

	matches, err := model.index.TopK(ctx, query, row, k)
	if err != nil {
		return nil, err
	}

	recs := make([]models.RecommendedMovie, 0, len(matches))
	for _, match := range matches {
		recs = append(recs, models.NewRecommendedMovie(model.movieAt(match.Row), match.Score))
	}

	return recs, nil
}

// Search returns catalog titles matching the query, exact normalized
// matches first, then fuzzy matches above the similarity threshold.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*models.SearchResponse, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	model := e.model.Load()
	if model == nil {
		return nil, ErrModelNotLoaded
	}

	query := strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(query) < minQueryRunes {
		return nil, ErrEmptyQuery
	}

	matches := model.resolver.Search(query, e.clampSearchLimit(req.Limit), req.MinSimilarity)

	results := make([]models.SearchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, models.NewSearchResult(model.movieAt(match.Row), match.Score))
	}

	e.logger.Debug().
		Str("query", req.Query).
		Int("returned", len(results)).
		Msg("search complete")

	return &models.SearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	}, nil
}

// clampK applies the default and maximum recommendation count.
func (e *Engine) clampK(k int) int {
	if k <= 0 {
		return e.config.Limits.DefaultK
	}
	if k > e.config.Limits.MaxK {
		return e.config.Limits.MaxK
	}
	return k
}

// clampSearchLimit applies the default and maximum search result count.
func (e *Engine) clampSearchLimit(limit int) int {
	if limit <= 0 {
		return e.config.Resolver.SearchLimit
	}
	if limit > e.config.Resolver.MaxSearchLimit {
		return e.config.Resolver.MaxSearchLimit
	}
	return limit
}

// recordResolve counts a successful resolution by kind.
func (e *Engine) recordResolve(exact bool) {
	if exact {
		metrics.RecordResolveOutcome(metrics.ResolveExact)
	} else {
		metrics.RecordResolveOutcome(metrics.ResolveFuzzy)
	}
}

// Train builds a fresh snapshot from the data provider and installs it.
// The previous snapshot keeps serving until the swap; a failed build
// leaves it in place. Returns ErrTrainingInProgress when a build is
// already running.
func (e *Engine) Train(ctx context.Context) error {
	if !e.trainMu.TryLock() {
		return ErrTrainingInProgress
	}
	defer e.trainMu.Unlock()

	start := time.Now()
	e.beginTraining()
	e.logger.Info().Msg("starting model build")

	model, err := e.runBuild(ctx)
	if err != nil {
		e.failTraining(err)
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		e.logger.Error().Err(err).Msg("model build failed, previous snapshot kept")
		return err
	}

	e.model.Store(model)
	e.persist(ctx, model)
	e.completeTraining(model, start)
	metrics.RecordModelBuild(time.Since(start), model.NumMovies(), model.VocabularySize(), nil)

	e.logger.Info().
		Str("version", model.Version).
		Int("movies", model.NumMovies()).
		Int("vocabulary", model.VocabularySize()).
		Dur("duration", model.BuildDuration).
		Msg("model build complete")

	return nil
}

// runBuild loads the corpus and runs the training pipeline under the
// configured timeout.
func (e *Engine) runBuild(ctx context.Context) (*Model, error) {
	buildCtx, cancel := context.WithTimeout(ctx, e.config.Training.Timeout)
	defer cancel()

	movies, err := e.provider.AllMoviesForTraining(buildCtx)
	if err != nil {
		return nil, fmt.Errorf("load training corpus: %w", err)
	}

	return buildModel(buildCtx, e.config, movies)
}

// persist saves the snapshot and prunes old versions. Persistence is
// best-effort: failures are logged, never surfaced to the caller.
func (e *Engine) persist(ctx context.Context, m *Model) {
	if e.store == nil {
		return
	}

	version, err := e.store.Save(ctx, m)
	if err != nil {
		e.logger.Warn().Err(err).Msg("persisting model snapshot failed")
		return
	}
	if err := e.store.Prune(ctx, e.config.Training.RetainVersions); err != nil {
		e.logger.Warn().Err(err).Msg("pruning model snapshots failed")
	}

	e.logger.Debug().Str("version", version).Msg("model snapshot persisted")
}

// TriggerRebuild starts an asynchronous rebuild. Returns
// ErrRebuildThrottled when called faster than the configured minimum
// interval and ErrTrainingInProgress when a build is already running.
func (e *Engine) TriggerRebuild() error {
	if e.rebuildLimiter != nil && !e.rebuildLimiter.Allow() {
		return ErrRebuildThrottled
	}
	if e.isTraining() {
		return ErrTrainingInProgress
	}

	// The training check above is advisory: a concurrent trigger loses
	// the TryLock race inside Train instead.
	go func() {
		err := e.Train(context.Background())
		if err != nil && !errors.Is(err, ErrTrainingInProgress) {
			e.logger.Error().Err(err).Msg("triggered rebuild failed")
		}
	}()

	return nil
}

// LoadFromStore installs the most recently persisted snapshot.
func (e *Engine) LoadFromStore(ctx context.Context) error {
	if e.store == nil {
		return fmt.Errorf("model store not configured")
	}

	model, err := e.store.LoadLatest(ctx)
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	if err := model.finalize(e.config); err != nil {
		return fmt.Errorf("restore snapshot %s: %w", model.Version, err)
	}

	e.model.Store(model)
	e.noteInstalled(model)

	e.logger.Info().
		Str("version", model.Version).
		Int("movies", model.NumMovies()).
		Time("built_at", model.BuiltAt).
		Msg("model snapshot restored from store")

	return nil
}

// Status returns the current training and model state.
func (e *Engine) Status() TrainingStatus {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	return e.status
}

// SetNextTraining records when the next scheduled training run happens.
func (e *Engine) SetNextTraining(t time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.NextScheduledTraining = t
}

// isTraining reports whether a build is running.
func (e *Engine) isTraining() bool {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	return e.status.IsTraining
}

// beginTraining marks a build as started.
func (e *Engine) beginTraining() {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.IsTraining = true
	e.status.LastError = ""
}

// failTraining marks a build as failed.
func (e *Engine) failTraining(err error) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.IsTraining = false
	e.status.LastError = err.Error()
}

// completeTraining records a successful build.
func (e *Engine) completeTraining(m *Model, start time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.IsTraining = false
	e.status.LastError = ""
	e.markInstalledLocked(m)
	e.status.LastTrainingDurationMS = time.Since(start).Milliseconds()
}

// noteInstalled records a snapshot installed outside of training, such as
// a restore from the model store.
func (e *Engine) noteInstalled(m *Model) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.markInstalledLocked(m)
	e.status.LastTrainingDurationMS = m.BuildDuration.Milliseconds()
}

// markInstalledLocked updates the snapshot fields of the status.
// Must be called with statusMu held.
func (e *Engine) markInstalledLocked(m *Model) {
	e.status.ModelLoaded = true
	e.status.ModelVersion = m.Version
	e.status.MovieCount = m.NumMovies()
	e.status.VocabularySize = m.VocabularySize()
	e.status.LastTrainedAt = m.BuiltAt
}
