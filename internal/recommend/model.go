// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tomtom215/reelrank/internal/models"
	"github.com/tomtom215/reelrank/internal/recommend/feature"
	"github.com/tomtom215/reelrank/internal/recommend/resolve"
	"github.com/tomtom215/reelrank/internal/recommend/tfidf"
)

// Model is one immutable trained snapshot: the corpus as it stood at build
// time plus the TF-IDF artifacts derived from it. Exported fields are the
// persisted form; the similarity index, title resolver, and row lookup are
// rebuilt by finalize after construction or decode and never serialized.
//
// A Model is never mutated after finalize returns, which is what makes the
// engine's atomic pointer swap safe.
type Model struct {
	// Version identifies the snapshot and doubles as its persistence key.
	Version string

	// BuiltAt is when the build finished.
	BuiltAt time.Time

	// BuildDuration is how long the build took.
	BuildDuration time.Duration

	// Movies is the corpus ordered by similarity-matrix row. Row i of the
	// index scores Movies[i] for the lifetime of this snapshot.
	Movies []models.MovieRecord

	// Terms is the TF-IDF vocabulary in column order.
	Terms []string

	// IDF holds the smoothed inverse document frequency per term.
	IDF []float64

	// Rows holds one L2-normalized TF-IDF vector per movie.
	Rows []tfidf.SparseVector

	index    *tfidf.Index
	resolver *resolve.Resolver
	rowByID  map[int64]int
}

// buildModel runs the full training pipeline over the corpus:
// feature documents, TF-IDF fit, similarity index, title resolver.
func buildModel(ctx context.Context, cfg *Config, movies []models.MovieRecord) (*Model, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCorpus
	}

	start := time.Now()

	builder := feature.NewBuilder(cfg.Weights)
	docs := builder.Documents(movies)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := tfidf.NewVectorizer()
	rows, err := vec.FitTransform(docs)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := &Model{
		Version: uuid.NewString(),
		Movies:  movies,
		Terms:   vec.Terms(),
		IDF:     vec.IDF(),
		Rows:    rows,
	}
	if err := m.finalize(cfg); err != nil {
		return nil, err
	}

	m.BuiltAt = time.Now().UTC()
	m.BuildDuration = time.Since(start)

	return m, nil
}

// finalize rebuilds the runtime state from the persisted fields. It must be
// called exactly once, before the model is published, both after buildModel
// and after decoding a stored snapshot.
func (m *Model) finalize(cfg *Config) error {
	if len(m.Rows) != len(m.Movies) {
		return fmt.Errorf("snapshot has %d rows for %d movies", len(m.Rows), len(m.Movies))
	}
	if len(m.IDF) != len(m.Terms) {
		return fmt.Errorf("snapshot has %d idf values for %d terms", len(m.IDF), len(m.Terms))
	}

	keys := make([]tfidf.RankKey, len(m.Movies))
	entries := make([]resolve.Entry, len(m.Movies))
	rowByID := make(map[int64]int, len(m.Movies))
	for i := range m.Movies {
		mv := &m.Movies[i]
		keys[i] = tfidf.RankKey{Votes: mv.NumVotes, ID: mv.ID}
		entries[i] = resolve.Entry{Row: i, ID: mv.ID, Title: mv.PrimaryTitle, Votes: mv.NumVotes}
		rowByID[mv.ID] = i
	}

	index, err := tfidf.NewIndex(len(m.Terms), m.Rows, keys)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	m.index = index
	m.resolver = resolve.NewResolver(entries, cfg.Resolver.FuzzyThreshold)
	m.rowByID = rowByID

	return nil
}

// NumMovies returns the corpus size of this snapshot.
func (m *Model) NumMovies() int {
	return len(m.Movies)
}

// VocabularySize returns the number of TF-IDF terms in this snapshot.
func (m *Model) VocabularySize() int {
	return len(m.Terms)
}

// movieAt returns the movie behind a similarity-matrix row.
func (m *Model) movieAt(row int) *models.MovieRecord {
	return &m.Movies[row]
}
