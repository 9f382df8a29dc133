// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package resolve maps free-text, possibly misspelled title queries to
// catalog entries. Exact matches on normalized titles win outright; fuzzy
// matching falls back to trigram similarity over both the normalized and
// the raw lowercased forms, so a query missing its leading article and a
// query with typos both still land on the right movie.
package resolve

import (
	"regexp"
	"strings"
)

var (
	leadingArticleRegex = regexp.MustCompile(`^(?:the|a|an)\s+`)
	punctuationRegex    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	multiSpaceRegex     = regexp.MustCompile(`\s+`)
)

// NormalizeTitle derives the matching form of a title: lowercased and
// trimmed, leading article (the/a/an) removed, punctuation replaced with
// spaces, runs of whitespace collapsed.
//
// Normalized titles are not unique across a catalog (sequels and remakes
// collide); callers tie-break on vote count and id.
func NormalizeTitle(title string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	normalized = leadingArticleRegex.ReplaceAllString(normalized, "")
	normalized = punctuationRegex.ReplaceAllString(normalized, " ")
	normalized = multiSpaceRegex.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
