// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package tfidf implements the TF-IDF feature space and the sparse
// similarity index behind content-based ranking.
//
// The vectorizer uses smoothed inverse document frequency,
//
//	idf(t) = ln((1 + N) / (1 + df(t))) + 1
//
// so terms appearing in every document keep a positive weight, and
// L2-normalizes each document vector so that ranking reduces to a sparse
// dot product.
package tfidf

import (
	"fmt"
	"math"
	"sort"
)

// SparseVector is an L2-normalized TF-IDF vector. Indices are vocabulary
// term positions in ascending order; Values holds the matching weights.
// A document with no known terms is the zero vector (no entries).
type SparseVector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no nonzero components.
func (v SparseVector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the Euclidean norm of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, w := range v.Values {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors. For unit vectors this
// is the cosine similarity.
func Dot(a, b SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Vectorizer learns a vocabulary and IDF weights from a token corpus and
// transforms documents into normalized sparse vectors.
//
// The vocabulary is sorted lexicographically, so fitting the same corpus
// always produces identical term indices and IDF values.
type Vectorizer struct {
	terms      []string
	vocabulary map[string]int
	idf        []float64
	docCount   int
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{vocabulary: make(map[string]int)}
}

// Fit learns the vocabulary and IDF weights from the corpus.
// Documents may be empty; the corpus itself must not be.
func (v *Vectorizer) Fit(docs [][]string) error {
	if len(docs) == 0 {
		return fmt.Errorf("fit: no documents")
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v.terms = terms
	v.vocabulary = vocabulary
	v.idf = idf
	v.docCount = len(docs)
	return nil
}

// Transform converts a document into an L2-normalized TF-IDF vector.
// Terms outside the fitted vocabulary are ignored; a document with no
// known terms yields the zero vector and normalization is skipped.
func (v *Vectorizer) Transform(doc []string) SparseVector {
	counts := make(map[int]int, len(doc))
	for _, term := range doc {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var norm float64
	for i, idx := range indices {
		w := float64(counts[idx]) * v.idf[idx]
		values[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}

	return SparseVector{Indices: indices, Values: values}
}

// FitTransform fits the vocabulary and returns the vector for every
// document, preserving row order.
func (v *Vectorizer) FitTransform(docs [][]string) ([]SparseVector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	rows := make([]SparseVector, len(docs))
	for i, doc := range docs {
		rows[i] = v.Transform(doc)
	}
	return rows, nil
}

// Terms returns the fitted vocabulary in index order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

// IDF returns the fitted IDF weights in vocabulary index order.
func (v *Vectorizer) IDF() []float64 {
	return v.idf
}

// NumTerms returns the vocabulary size.
func (v *Vectorizer) NumTerms() int {
	return len(v.terms)
}

// DocCount returns the number of documents the vectorizer was fitted on.
func (v *Vectorizer) DocCount() int {
	return v.docCount
}
