// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package tfidf

import (
	"context"
	"fmt"
	"sort"
)

// RankKey carries the tie-break attributes for one corpus row. Rows with
// equal similarity rank by Votes descending, then ID ascending.
type RankKey struct {
	Votes int64
	ID    int64
}

// Match is one ranked result: a corpus row and its cosine similarity to
// the query, clamped to [0, 1].
type Match struct {
	Row   int
	Score float64
}

// posting records one row's weight for a vocabulary term.
type posting struct {
	row    int32
	weight float64
}

// Index is an inverted index over normalized document vectors. Scoring a
// query touches only the postings of the query's nonzero terms, so ranking
// cost scales with the query's sparsity rather than the corpus size times
// vocabulary size.
//
// The index is immutable after construction and safe for concurrent use.
type Index struct {
	postings [][]posting
	keys     []RankKey
	numRows  int
}

// NewIndex builds an inverted index from row vectors. keys supplies the
// tie-break attributes per row and may be nil, in which case rows tie-break
// by row number alone.
func NewIndex(numTerms int, rows []SparseVector, keys []RankKey) (*Index, error) {
	if keys == nil {
		keys = make([]RankKey, len(rows))
		for i := range keys {
			keys[i] = RankKey{ID: int64(i)}
		}
	}
	if len(keys) != len(rows) {
		return nil, fmt.Errorf("index: %d rank keys for %d rows", len(keys), len(rows))
	}

	postings := make([][]posting, numTerms)
	for row, vec := range rows {
		for i, termIdx := range vec.Indices {
			if termIdx < 0 || termIdx >= numTerms {
				return nil, fmt.Errorf("index: row %d term index %d out of range [0, %d)", row, termIdx, numTerms)
			}
			postings[termIdx] = append(postings[termIdx], posting{row: int32(row), weight: vec.Values[i]})
		}
	}

	return &Index{postings: postings, keys: keys, numRows: len(rows)}, nil
}

// Rows returns the number of indexed rows.
func (ix *Index) Rows() int {
	return ix.numRows
}

// TopK ranks all rows against the query vector and returns the top k
// matches ordered by score descending, votes descending, id ascending.
//
// excludeRow removes that row from the candidates (pass a negative value
// to rank the full corpus, including the query's own row). When k exceeds
// the candidate count all candidates are returned, zero-score rows
// included, so the caller always receives min(k, candidates) results.
func (ix *Index) TopK(ctx context.Context, query SparseVector, excludeRow, k int) ([]Match, error) {
	if k <= 0 {
		return []Match{}, nil
	}

	scores := make([]float64, ix.numRows)
	for i, termIdx := range query.Indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if termIdx < 0 || termIdx >= len(ix.postings) {
			continue
		}
		qw := query.Values[i]
		for _, p := range ix.postings[termIdx] {
			scores[p.row] += qw * p.weight
		}
	}

	order := make([]int, 0, ix.numRows)
	for row := 0; row < ix.numRows; row++ {
		if row == excludeRow {
			continue
		}
		order = append(order, row)
	}

	sort.Slice(order, func(i, j int) bool {
		ri, rj := order[i], order[j]
		if scores[ri] != scores[rj] {
			return scores[ri] > scores[rj]
		}
		if ix.keys[ri].Votes != ix.keys[rj].Votes {
			return ix.keys[ri].Votes > ix.keys[rj].Votes
		}
		return ix.keys[ri].ID < ix.keys[rj].ID
	})

	if k < len(order) {
		order = order[:k]
	}

	matches := make([]Match, len(order))
	for i, row := range order {
		matches[i] = Match{Row: row, Score: clampScore(scores[row])}
	}
	return matches, nil
}

// clampScore bounds float rounding noise: normalized vectors keep cosine
// inside [0, 1], but accumulated products can drift a few ulps past 1.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
