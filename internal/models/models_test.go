// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func marshalToMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal %T: %v", v, err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Failed to unmarshal %T into map: %v", v, err)
	}
	return m
}

func TestSearchResultUsesLowercaseKeys(t *testing.T) {
	t.Parallel()

	r := SearchResult{
		ID:              42,
		PrimaryTitle:    "The Matrix",
		StartYear:       intPtr(1999),
		AverageRating:   floatPtr(8.7),
		SimilarityScore: 1.0,
	}

	m := marshalToMap(t, r)
	for _, key := range []string{"id", "primarytitle", "startyear", "averagerating", "similarity_score"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Expected key %q in search result JSON, got keys %v", key, mapKeys(m))
		}
	}
	if _, ok := m["primaryTitle"]; ok {
		t.Error("Search result must not use camelCase primaryTitle")
	}
}

func TestRecommendedMovieUsesCamelCaseKeys(t *testing.T) {
	t.Parallel()

	rec := NewRecommendedMovie(&MovieRecord{
		ID:            7,
		Tconst:        "tt0133093",
		PrimaryTitle:  "The Matrix",
		StartYear:     intPtr(1999),
		AverageRating: floatPtr(8.7),
		NumVotes:      1_800_000,
	}, 0.83)

	m := marshalToMap(t, rec)
	for _, key := range []string{"id", "primaryTitle", "startYear", "averageRating", "numVotes", "tconst", "score"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Expected key %q in recommendation JSON, got keys %v", key, mapKeys(m))
		}
	}
	if _, ok := m["primarytitle"]; ok {
		t.Error("Recommendation must not use lowercase primarytitle")
	}
	if got := m["score"].(float64); got != 0.83 {
		t.Errorf("Expected score 0.83, got %v", got)
	}
}

func TestOptionalFieldsOmittedWhenUnknown(t *testing.T) {
	t.Parallel()

	rec := MovieRecord{ID: 1, PrimaryTitle: "Untitled", NumVotes: 0}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to marshal MovieRecord: %v", err)
	}

	for _, absent := range []string{"startYear", "averageRating", "runtimeMinutes", "rank", "tconst", "imdbLink"} {
		if strings.Contains(string(data), absent) {
			t.Errorf("Expected %q to be omitted for unknown value, got %s", absent, data)
		}
	}
	if !strings.Contains(string(data), `"numVotes":0`) {
		t.Errorf("Expected numVotes to serialize as 0, got %s", data)
	}
}

func TestHasMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		movie MovieRecord
		want  bool
	}{
		{"empty record", MovieRecord{PrimaryTitle: "Blank"}, false},
		{"genres only", MovieRecord{Genres: []string{"Action"}}, true},
		{"directors only", MovieRecord{Directors: []string{"Lana Wachowski"}}, true},
		{"writers only", MovieRecord{Writers: []string{"Lilly Wachowski"}}, true},
		{"cast only", MovieRecord{PrincipalCast: []string{"Keanu Reeves"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.HasMetadata(); got != tt.want {
				t.Errorf("HasMetadata() = %v, want %v", got, tt.want)
			}
		})
	}
}

func mapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
