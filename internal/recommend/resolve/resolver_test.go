// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package resolve

import (
	"testing"
)

func testResolver(threshold float64) *Resolver {
	return NewResolver([]Entry{
		{Row: 0, ID: 1, Title: "The Matrix", Votes: 1_800_000},
		{Row: 1, ID: 2, Title: "The Matrix Reloaded", Votes: 600_000},
		{Row: 2, ID: 3, Title: "Inception", Votes: 2_400_000},
		{Row: 3, ID: 4, Title: "Heat", Votes: 700_000},
	}, threshold)
}

func TestResolver_ResolveExactMatch(t *testing.T) {
	r := testResolver(0)

	tests := []struct {
		name   string
		query  string
		wantID int64
	}{
		{"verbatim title", "The Matrix", 1},
		{"missing article", "Matrix", 1},
		{"case insensitive", "tHe MaTrIx", 1},
		{"trailing punctuation", "The Matrix!!!", 1},
		{"sequel verbatim", "Matrix Reloaded", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := r.Resolve(tt.query, true, 0)
			if !ok {
				t.Fatalf("Resolve(%q) not found", tt.query)
			}
			if m.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %d, want %d", tt.query, m.ID, tt.wantID)
			}
			if !m.Exact || m.Score != 1.0 {
				t.Errorf("Resolve(%q) = score %v exact %v, want 1.0 exact", tt.query, m.Score, m.Exact)
			}
		})
	}
}

func TestResolver_ExactBeatsFuzzy(t *testing.T) {
	// "Matrix" matches The Matrix exactly after normalization while also
	// being a strong fuzzy candidate for the sequel; exact must win.
	r := testResolver(0)
	m, ok := r.Resolve("Matrix", true, 0)
	if !ok || m.ID != 1 {
		t.Fatalf("Resolve(Matrix) = %+v (found %v), want exact id 1", m, ok)
	}
	if !m.Exact {
		t.Error("Resolve(Matrix) not flagged exact")
	}
}

func TestResolver_ExactCollisionTieBreak(t *testing.T) {
	entries := []Entry{
		{Row: 0, ID: 10, Title: "The Matrix", Votes: 100},
		{Row: 1, ID: 5, Title: "Matrix", Votes: 900},
		{Row: 2, ID: 7, Title: "Matrix!", Votes: 900},
	}
	r := NewResolver(entries, 0)

	// All three normalize to "matrix": highest votes wins, then lowest id.
	m, ok := r.Resolve("the matrix", true, 0)
	if !ok {
		t.Fatal("Resolve(the matrix) not found")
	}
	if m.ID != 5 {
		t.Errorf("Resolve tie-break picked id %d, want 5 (votes 900, lowest id)", m.ID)
	}
}

func TestResolver_FuzzyTypo(t *testing.T) {
	r := testResolver(0)

	// At the permissive floor the mangled query still lands on The Matrix.
	m, ok := r.Resolve("Th3 M4trx", true, MinThreshold)
	if !ok {
		t.Fatal("Resolve(Th3 M4trx) with permissive threshold not found")
	}
	if m.ID != 1 {
		t.Errorf("Resolve(Th3 M4trx).ID = %d, want 1", m.ID)
	}
	if m.Exact {
		t.Error("typo resolution flagged exact")
	}
	if m.Score <= 0 || m.Score >= 1 {
		t.Errorf("fuzzy score = %v, want in (0, 1)", m.Score)
	}

	// The default threshold rejects it.
	if _, ok := r.Resolve("Th3 M4trx", true, 0); ok {
		t.Error("Resolve(Th3 M4trx) at default threshold unexpectedly found a match")
	}

	// Fuzzy disabled: no match even at the floor.
	if _, ok := r.Resolve("Th3 M4trx", false, MinThreshold); ok {
		t.Error("Resolve(Th3 M4trx) with fuzzy=false unexpectedly found a match")
	}
}

func TestResolver_ResolveNotFound(t *testing.T) {
	r := testResolver(0)

	for _, query := range []string{"Completely Unrelated Film", "zzzzzz", "Th"} {
		if m, ok := r.Resolve(query, true, 0); ok {
			t.Errorf("Resolve(%q) = %+v, want not found", query, m)
		}
	}
}

func TestResolver_Search(t *testing.T) {
	r := testResolver(0)

	matches := r.Search("Matrix", 10, 0)
	if len(matches) != 2 {
		t.Fatalf("Search(Matrix) returned %d matches %+v, want 2", len(matches), matches)
	}
	if matches[0].ID != 1 || matches[0].Score != 1.0 || !matches[0].Exact {
		t.Errorf("first match = %+v, want exact id 1 score 1.0", matches[0])
	}
	if matches[1].ID != 2 {
		t.Errorf("second match = %+v, want fuzzy id 2", matches[1])
	}
	if matches[1].Score >= matches[0].Score {
		t.Errorf("fuzzy score %v not below exact score", matches[1].Score)
	}
}

func TestResolver_SearchLimit(t *testing.T) {
	r := testResolver(0)

	matches := r.Search("Matrix", 1, 0)
	if len(matches) != 1 {
		t.Fatalf("Search(limit=1) returned %d matches", len(matches))
	}
	if matches[0].ID != 1 {
		t.Errorf("Search(limit=1) kept id %d, want the top match 1", matches[0].ID)
	}
}

func TestResolver_SearchMinSimilarity(t *testing.T) {
	r := testResolver(0)

	// The sequel's best score is 7/16 = 0.4375; a 0.6 cutoff drops it.
	matches := r.Search("Matrix", 10, 0.6)
	if len(matches) != 1 {
		t.Fatalf("Search(min_similarity=0.6) returned %d matches %+v, want 1", len(matches), matches)
	}
	if matches[0].ID != 1 {
		t.Errorf("Search(min_similarity=0.6) kept id %d, want 1", matches[0].ID)
	}
}

func TestResolver_SearchNoMatches(t *testing.T) {
	r := testResolver(0)

	matches := r.Search("qqqqqq", 10, 0)
	if len(matches) != 0 {
		t.Errorf("Search(qqqqqq) = %+v, want empty", matches)
	}
}

func TestResolver_SearchDeterministicOrder(t *testing.T) {
	entries := []Entry{
		{Row: 0, ID: 3, Title: "Matrix", Votes: 500},
		{Row: 1, ID: 1, Title: "The Matrix", Votes: 500},
		{Row: 2, ID: 2, Title: "Matrix!", Votes: 900},
	}
	r := NewResolver(entries, 0)

	// All normalize to "matrix" and score 1.0: votes desc, then id asc.
	matches := r.Search("matrix", 10, 0)
	wantIDs := []int64{2, 1, 3}
	if len(matches) != len(wantIDs) {
		t.Fatalf("Search returned %d matches, want %d", len(matches), len(wantIDs))
	}
	for i, want := range wantIDs {
		if matches[i].ID != want {
			t.Errorf("match[%d].ID = %d, want %d", i, matches[i].ID, want)
		}
	}
}

func TestResolver_EffectiveThresholdClamping(t *testing.T) {
	r := testResolver(0.30)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero falls back to configured", 0, 0.30},
		{"below floor clamps up", 0.01, MinThreshold},
		{"above ceiling clamps down", 5, MaxThreshold},
		{"in range passes through", 0.42, 0.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.effectiveThreshold(tt.in); got != tt.want {
				t.Errorf("effectiveThreshold(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
