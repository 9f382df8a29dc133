// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

// SearchResult represents a single fuzzy title match.
//
// Keys are lowercase (primarytitle, startyear) to match the public search
// contract. SimilarityScore is the title-match score: 1.0 for an exact
// normalized match, the trigram similarity otherwise. It is never the
// content-similarity cosine score.
type SearchResult struct {
	ID              int64    `json:"id"`
	PrimaryTitle    string   `json:"primarytitle"`
	StartYear       *int     `json:"startyear,omitempty"`
	AverageRating   *float64 `json:"averagerating,omitempty"`
	SimilarityScore float64  `json:"similarity_score"`
}

// SearchResponse is the payload for GET /api/v1/search.
type SearchResponse struct {
	// Query is the original query string as submitted (trimmed).
	Query string `json:"query"`

	// Results is ordered by similarity score descending, vote count
	// descending, then id ascending. Never null: empty result sets
	// serialize as [].
	Results []SearchResult `json:"results"`

	// Count is len(Results).
	Count int `json:"count"`
}

// NewSearchResult builds a SearchResult from a catalog record and a
// title-match score.
func NewSearchResult(m *MovieRecord, score float64) SearchResult {
	return SearchResult{
		ID:              m.ID,
		PrimaryTitle:    m.PrimaryTitle,
		StartYear:       m.StartYear,
		AverageRating:   m.AverageRating,
		SimilarityScore: score,
	}
}
