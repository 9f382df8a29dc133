// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/reelrank/internal/models"
)

// DataProvider defines the interface for fetching the training corpus.
// This is implemented by the database layer; keeping it an interface here
// avoids a dependency cycle and lets tests train from fixtures.
type DataProvider interface {
	// AllMoviesForTraining returns the full catalog ordered by id
	// ascending. Row order defines the similarity-matrix row mapping for
	// the lifetime of one snapshot.
	AllMoviesForTraining(ctx context.Context) ([]models.MovieRecord, error)
}

// ModelStore persists model snapshots across restarts. Implementations
// must tolerate concurrent readers; the engine serializes writers.
type ModelStore interface {
	// Save persists a snapshot and returns its version identifier.
	Save(ctx context.Context, m *Model) (string, error)

	// LoadLatest returns the most recently saved snapshot, or an error
	// wrapping ErrModelNotLoaded when the store is empty.
	LoadLatest(ctx context.Context) (*Model, error)

	// Prune removes all but the newest keep versions.
	Prune(ctx context.Context, keep int) error

	// Close releases the underlying storage.
	Close() error
}

// RecommendRequest asks for movies similar to a resolved title.
type RecommendRequest struct {
	// Title is the free-text title query. Resolution handles missing
	// articles, casing, punctuation, and (when Fuzzy) misspellings.
	Title string `json:"title"`

	// K is the number of recommendations to return.
	// Defaults to Config.Limits.DefaultK if zero, capped at MaxK.
	K int `json:"k,omitempty"`

	// Fuzzy enables trigram fallback when no exact title match exists.
	Fuzzy bool `json:"fuzzy"`

	// MinSimilarity overrides the configured fuzzy threshold for this
	// request. Zero keeps the configured default; values clamp into
	// [0.1, 1.0].
	MinSimilarity float64 `json:"min_similarity,omitempty"`
}

// SearchRequest asks for catalog titles matching a query string.
type SearchRequest struct {
	// Query is the free-text search input.
	Query string `json:"query"`

	// Limit is the maximum number of results.
	// Defaults to Config.Limits.SearchLimit if zero.
	Limit int `json:"limit,omitempty"`

	// MinSimilarity is the minimum title-match score to include.
	// Zero keeps the configured default; values clamp into [0.1, 1.0].
	MinSimilarity float64 `json:"min_similarity,omitempty"`
}

// TrainingStatus reports the engine's model and training state.
type TrainingStatus struct {
	// IsTraining indicates whether a rebuild is currently running.
	IsTraining bool `json:"is_training"`

	// ModelLoaded indicates whether a snapshot is installed and serving.
	ModelLoaded bool `json:"model_loaded"`

	// ModelVersion is the installed snapshot's version identifier.
	ModelVersion string `json:"model_version,omitempty"`

	// MovieCount is the number of movies in the installed snapshot.
	MovieCount int `json:"movie_count"`

	// VocabularySize is the number of TF-IDF terms in the snapshot.
	VocabularySize int `json:"vocabulary_size"`

	// LastTrainedAt is when the installed snapshot was built.
	LastTrainedAt time.Time `json:"last_trained_at"`

	// LastTrainingDurationMS is how long the last successful build took.
	LastTrainingDurationMS int64 `json:"last_training_duration_ms"`

	// LastError contains the most recent training failure, if any.
	LastError string `json:"last_error,omitempty"`

	// NextScheduledTraining is when the retrain service will run next.
	NextScheduledTraining time.Time `json:"next_scheduled_training,omitempty"`
}
