// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

// MovieRecord represents a single movie from the catalog dataset.
//
// This is the core data model for the recommendation corpus. Records are
// loaded from the IMDb Top 1000 CSV into DuckDB at startup and feed both
// the catalog endpoints and model training.
//
// Key Fields:
//   - ID: Stable integer identifier (primary key, row order in the dataset)
//   - Tconst: IMDb title identifier (e.g., "tt0133093"), enrichment only
//   - PrimaryTitle: Display title, always non-empty for valid records
//   - NumVotes: Vote count, used as the ranking tie-breaker (0 when unknown)
//   - Genres/Directors/Writers/PrincipalCast: Categorical metadata that
//     forms the training document for the TF-IDF model
//
// Optional numeric fields use pointers with omitempty so that unknown
// values are omitted from JSON rather than serialized as zero.
type MovieRecord struct {
	ID     int64  `json:"id"`
	Tconst string `json:"tconst,omitempty"`

	// Title and release metadata
	PrimaryTitle   string   `json:"primaryTitle"`
	StartYear      *int     `json:"startYear,omitempty"`
	RuntimeMinutes *int     `json:"runtimeMinutes,omitempty"`
	Rank           *int     `json:"rank,omitempty"`
	AverageRating  *float64 `json:"averageRating,omitempty"`
	NumVotes       int64    `json:"numVotes"`

	// Categorical metadata (ordered as in the source dataset, possibly empty)
	Genres        []string `json:"genres"`
	Directors     []string `json:"directors"`
	Writers       []string `json:"writers"`
	PrincipalCast []string `json:"principalCast,omitempty"`

	IMDbLink string `json:"imdbLink,omitempty"`
}

// HasMetadata reports whether the record carries any categorical metadata
// usable for model training. Records without metadata still appear in the
// catalog but produce zero vectors in the similarity model.
func (m *MovieRecord) HasMetadata() bool {
	return len(m.Genres) > 0 || len(m.Directors) > 0 ||
		len(m.Writers) > 0 || len(m.PrincipalCast) > 0
}
