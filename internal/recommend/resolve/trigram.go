// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package resolve

import (
	"unicode"
)

// trigramSet extracts the trigram set of a string following the pg_trgm
// convention: the text splits into alphanumeric words, each word is padded
// with two leading spaces and one trailing space, and every 3-rune window
// becomes one trigram. Padding makes word prefixes comparable, so "matrix"
// and "m4trx" still share their leading-edge trigrams.
func trigramSet(text string) map[string]struct{} {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(text))
	for _, word := range words {
		padded := []rune("  " + word + " ")
		for i := 0; i+3 <= len(padded); i++ {
			set[string(padded[i:i+3])] = struct{}{}
		}
	}
	return set
}

// splitWords splits text into runs of letters and digits; everything else
// separates words.
func splitWords(text string) []string {
	var words []string
	var current []rune
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}

// Similarity returns the trigram Jaccard similarity of two strings in
// [0, 1]: the size of the trigram intersection divided by the size of the
// union. Identical non-empty strings score 1.0; strings with no
// alphanumeric content score 0.
func Similarity(a, b string) float64 {
	return jaccard(trigramSet(a), trigramSet(b))
}

func jaccard(left, right map[string]struct{}) float64 {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	intersection := 0
	for gram := range left {
		if _, ok := right[gram]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	union := len(left) + len(right) - intersection
	return float64(intersection) / float64(union)
}
