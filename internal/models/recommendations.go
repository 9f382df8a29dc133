// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

// RecommendedMovie represents a single content-similarity recommendation.
//
// Keys are camelCase (primaryTitle, startYear) to match the public
// recommendation contract. Score is the cosine similarity between the
// query movie and this movie, clamped to [0, 1].
type RecommendedMovie struct {
	ID            int64    `json:"id"`
	PrimaryTitle  string   `json:"primaryTitle"`
	StartYear     *int     `json:"startYear,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	NumVotes      int64    `json:"numVotes"`
	Tconst        string   `json:"tconst,omitempty"`
	Score         float64  `json:"score"`
}

// RecommendResponse is the payload for GET /api/v1/recommend.
type RecommendResponse struct {
	// Title is the resolved canonical title the recommendations are for.
	// It differs from QueryTitle when fuzzy matching corrected the input.
	Title string `json:"title"`

	// QueryTitle is the title as submitted by the client.
	QueryTitle string `json:"query_title"`

	// Recommendations is ordered by score descending, vote count
	// descending, then id ascending. Never null: a degenerate query
	// movie yields [].
	Recommendations []RecommendedMovie `json:"recommendations"`
}

// NewRecommendedMovie builds a RecommendedMovie from a catalog record and
// a cosine similarity score.
func NewRecommendedMovie(m *MovieRecord, score float64) RecommendedMovie {
	return RecommendedMovie{
		ID:            m.ID,
		PrimaryTitle:  m.PrimaryTitle,
		StartYear:     m.StartYear,
		AverageRating: m.AverageRating,
		NumVotes:      m.NumVotes,
		Tconst:        m.Tconst,
		Score:         score,
	}
}
