// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package feature converts movie metadata into training documents for the
// TF-IDF vectorizer.
//
// Each movie becomes a bag of tokens derived from its categorical metadata
// (genres, directors, writers, principal cast). Multi-word values collapse
// into single tokens ("Lana Wachowski" -> "lana_wachowski") so that a person
// or genre is always one vocabulary term. Category weights repeat tokens to
// boost their term frequency.
package feature

import (
	"strings"

	"github.com/tomtom215/reelrank/internal/models"
)

// Weights controls the term-frequency boost per metadata category.
// A weight of N repeats every token from that category N times in the
// document; zero drops the category entirely.
type Weights struct {
	Genres        int `json:"genres"`
	Directors     int `json:"directors"`
	Writers       int `json:"writers"`
	PrincipalCast int `json:"principal_cast"`
}

// Builder produces deterministic training documents from movie records.
// The same record always yields the same token sequence.
type Builder struct {
	weights Weights
}

// NewBuilder creates a document builder with the given category weights.
func NewBuilder(w Weights) *Builder {
	return &Builder{weights: w}
}

// Document builds the token sequence for a single movie.
//
// Categories are emitted in a fixed order (genres, directors, writers,
// principal cast), values in their source order, each token repeated
// according to its category weight. Empty values contribute nothing; a
// record with no usable metadata yields an empty document.
func (b *Builder) Document(m *models.MovieRecord) []string {
	doc := make([]string, 0, b.estimateTokens(m))
	doc = appendTokens(doc, m.Genres, b.weights.Genres)
	doc = appendTokens(doc, m.Directors, b.weights.Directors)
	doc = appendTokens(doc, m.Writers, b.weights.Writers)
	doc = appendTokens(doc, m.PrincipalCast, b.weights.PrincipalCast)
	return doc
}

// Documents builds token sequences for an entire corpus, preserving row order.
func (b *Builder) Documents(movies []models.MovieRecord) [][]string {
	docs := make([][]string, len(movies))
	for i := range movies {
		docs[i] = b.Document(&movies[i])
	}
	return docs
}

func (b *Builder) estimateTokens(m *models.MovieRecord) int {
	return len(m.Genres)*b.weights.Genres +
		len(m.Directors)*b.weights.Directors +
		len(m.Writers)*b.weights.Writers +
		len(m.PrincipalCast)*b.weights.PrincipalCast
}

// appendTokens tokenizes each value and appends it weight times.
func appendTokens(doc []string, values []string, weight int) []string {
	if weight <= 0 {
		return doc
	}
	for _, v := range values {
		tok := Token(v)
		if tok == "" {
			continue
		}
		for i := 0; i < weight; i++ {
			doc = append(doc, tok)
		}
	}
	return doc
}

// Token normalizes a single metadata value into one vocabulary term:
// trimmed, lowercased, internal spaces replaced with underscores.
// Returns "" for blank input.
func Token(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(v), " ", "_")
}
