// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/reelrank/internal/recommend"
)

// recommendParams binds GET /api/v1/recommend query parameters for
// validation. MinSimilarity defaults to the configured fuzzy threshold, so
// it is always set when validated.
type recommendParams struct {
	Title         string  `validate:"required,min=2,max=200"`
	K             int     `validate:"gte=1,lte=50"`
	MinSimilarity float64 `validate:"gte=0.1,lte=1.0"`
}

// Recommend handles content-based recommendation requests.
//
// @Summary Get movie recommendations
// @Description Resolves the given title against the catalog (exact normalized
// @Description match first, trigram fuzzy match when fuzzy=true) and returns
// @Description the k most similar movies by TF-IDF cosine similarity. The
// @Description queried movie itself is never included.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param title query string true "Movie title (2-200 characters)"
// @Param k query int false "Number of recommendations (1-50, default 10)"
// @Param fuzzy query bool false "Enable fuzzy title matching (default true)"
// @Param min_similarity query number false "Minimum fuzzy match similarity (0.1-1.0, default 0.3)"
// @Success 200 {object} models.RecommendResponse "Recommendations for the resolved title"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Title not found in the catalog"
// @Failure 503 {object} models.APIResponse "Model not trained yet"
// @Router /api/v1/recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireEngine(w) {
		return
	}

	title := r.URL.Query().Get("title")
	k, err := parseIntParam(r, "k", h.config.Recommend.DefaultK)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	fuzzy, err := parseBoolParam(r, "fuzzy", true)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	minSimilarity, err := parseFloatParam(r, "min_similarity", h.config.Resolver.FuzzyThreshold)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	params := recommendParams{
		Title:         strings.TrimSpace(title),
		K:             k,
		MinSimilarity: minSimilarity,
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.RecommendRequest{
		Title:         title,
		K:             k,
		Fuzzy:         fuzzy,
		MinSimilarity: minSimilarity,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			message := fmt.Sprintf("Movie %q not found", params.Title)
			if !fuzzy {
				message += ". Try fuzzy=true for approximate title matching"
			}
			respondError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
			return
		}
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// searchParams binds GET /api/v1/search query parameters for validation.
type searchParams struct {
	Query         string  `validate:"required,min=2,max=200"`
	Limit         int     `validate:"gte=1,lte=50"`
	MinSimilarity float64 `validate:"gte=0.1,lte=1.0"`
}

// Search handles fuzzy title search requests.
//
// @Summary Search movie titles
// @Description Searches catalog titles by normalized exact match and trigram
// @Description similarity. Exact matches score 1.0 and rank first; fuzzy
// @Description matches follow ordered by similarity, vote count, then id.
// @Tags Search
// @Accept json
// @Produce json
// @Param q query string true "Search query (2-200 characters)"
// @Param limit query int false "Maximum results (1-50, default 10)"
// @Param min_similarity query number false "Minimum title similarity (0.1-1.0, default 0.3)"
// @Success 200 {object} models.SearchResponse "Matching titles"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Model not trained yet"
// @Router /api/v1/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireEngine(w) {
		return
	}

	query := r.URL.Query().Get("q")
	limit, err := parseIntParam(r, "limit", h.config.Resolver.SearchLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	minSimilarity, err := parseFloatParam(r, "min_similarity", h.config.Resolver.FuzzyThreshold)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	params := searchParams{
		Query:         strings.TrimSpace(query),
		Limit:         limit,
		MinSimilarity: minSimilarity,
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	resp, err := h.engine.Search(ctx, recommend.SearchRequest{
		Query:         query,
		Limit:         limit,
		MinSimilarity: minSimilarity,
	})
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
