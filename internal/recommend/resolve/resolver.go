// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package resolve

import (
	"sort"
	"strings"
)

// Similarity threshold bounds. Requests may override the configured
// threshold anywhere inside [MinThreshold, MaxThreshold]; the floor keeps
// heavily misspelled queries resolvable without admitting noise matches.
const (
	DefaultThreshold = 0.30
	MinThreshold     = 0.1
	MaxThreshold     = 1.0
)

// Entry is one catalog title registered with the resolver. Row is the
// similarity-matrix row for the movie, ID and Votes drive tie-breaks.
type Entry struct {
	Row   int
	ID    int64
	Title string
	Votes int64
}

// Match is a resolved or searched title. Score is 1.0 with Exact set for
// a normalized exact match, otherwise the trigram similarity that
// admitted the entry.
type Match struct {
	Row   int
	ID    int64
	Title string
	Score float64
	Exact bool
}

// indexedEntry caches the derived matching forms so that resolution is a
// map lookup plus, at worst, one linear trigram scan.
type indexedEntry struct {
	Entry
	normalized string
	normGrams  map[string]struct{}
	rawGrams   map[string]struct{}
}

// Resolver matches query strings against a fixed catalog snapshot.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	entries   []indexedEntry
	exact     map[string][]int
	threshold float64
}

// NewResolver indexes the given titles. threshold is the default minimum
// fuzzy similarity; non-positive values fall back to DefaultThreshold.
func NewResolver(entries []Entry, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	r := &Resolver{
		entries:   make([]indexedEntry, len(entries)),
		exact:     make(map[string][]int, len(entries)),
		threshold: threshold,
	}
	for i, e := range entries {
		normalized := NormalizeTitle(e.Title)
		r.entries[i] = indexedEntry{
			Entry:      e,
			normalized: normalized,
			normGrams:  trigramSet(normalized),
			rawGrams:   trigramSet(strings.ToLower(e.Title)),
		}
		if normalized != "" {
			r.exact[normalized] = append(r.exact[normalized], i)
		}
	}
	return r
}

// Resolve maps a query to the single best catalog entry.
//
// A normalized exact match always wins; among colliding titles the one
// with the most votes (then lowest id) is chosen. Without an exact match
// and with fuzzy enabled, the best trigram match at or above the
// threshold wins, with the same tie-breaks. The boolean is false when
// nothing qualifies.
func (r *Resolver) Resolve(query string, fuzzy bool, minSimilarity float64) (Match, bool) {
	normalized := NormalizeTitle(query)

	if rows, ok := r.exact[normalized]; ok {
		e := &r.entries[r.bestOf(rows)]
		return Match{Row: e.Row, ID: e.ID, Title: e.Title, Score: 1.0, Exact: true}, true
	}
	if !fuzzy {
		return Match{}, false
	}

	threshold := r.effectiveThreshold(minSimilarity)
	queryNorm := trigramSet(normalized)
	queryRaw := trigramSet(strings.ToLower(strings.TrimSpace(query)))

	best := -1
	var bestScore float64
	for i := range r.entries {
		e := &r.entries[i]
		score := r.score(e, queryNorm, queryRaw)
		if score < threshold {
			continue
		}
		if best < 0 || score > bestScore || (score == bestScore && r.outranks(i, best)) {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Match{}, false
	}

	e := &r.entries[best]
	return Match{Row: e.Row, ID: e.ID, Title: e.Title, Score: bestScore}, true
}

// Search returns every entry scoring at or above the threshold, ordered
// by score descending, votes descending, id ascending, truncated to
// limit. Normalized exact matches score 1.0.
func (r *Resolver) Search(query string, limit int, minSimilarity float64) []Match {
	threshold := r.effectiveThreshold(minSimilarity)
	normalized := NormalizeTitle(query)
	queryNorm := trigramSet(normalized)
	queryRaw := trigramSet(strings.ToLower(strings.TrimSpace(query)))

	type scored struct {
		idx   int
		score float64
		exact bool
	}
	candidates := make([]scored, 0, 16)
	for i := range r.entries {
		e := &r.entries[i]
		if normalized != "" && e.normalized == normalized {
			candidates = append(candidates, scored{idx: i, score: 1.0, exact: true})
			continue
		}
		score := r.score(e, queryNorm, queryRaw)
		if score >= threshold {
			candidates = append(candidates, scored{idx: i, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return r.outranks(candidates[i].idx, candidates[j].idx)
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		e := &r.entries[c.idx]
		matches[i] = Match{Row: e.Row, ID: e.ID, Title: e.Title, Score: c.score, Exact: c.exact}
	}
	return matches
}

// Entries returns the number of indexed titles.
func (r *Resolver) Entries() int {
	return len(r.entries)
}

// score is the greatest of the normalized-to-normalized and the raw
// lowercase-to-lowercase trigram similarities. Comparing both forms keeps
// article-stripped and verbatim queries on equal footing.
func (r *Resolver) score(e *indexedEntry, queryNorm, queryRaw map[string]struct{}) float64 {
	score := jaccard(queryNorm, e.normGrams)
	if raw := jaccard(queryRaw, e.rawGrams); raw > score {
		score = raw
	}
	return score
}

// bestOf picks the entry with the highest votes, then lowest id.
func (r *Resolver) bestOf(indexes []int) int {
	best := indexes[0]
	for _, idx := range indexes[1:] {
		if r.outranks(idx, best) {
			best = idx
		}
	}
	return best
}

// outranks reports whether entry i beats entry j on the deterministic
// tie-break order: votes descending, then id ascending.
func (r *Resolver) outranks(i, j int) bool {
	if r.entries[i].Votes != r.entries[j].Votes {
		return r.entries[i].Votes > r.entries[j].Votes
	}
	return r.entries[i].ID < r.entries[j].ID
}

func (r *Resolver) effectiveThreshold(minSimilarity float64) float64 {
	if minSimilarity <= 0 {
		return r.threshold
	}
	if minSimilarity < MinThreshold {
		return MinThreshold
	}
	if minSimilarity > MaxThreshold {
		return MaxThreshold
	}
	return minSimilarity
}
