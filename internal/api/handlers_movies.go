// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelrank/internal/database"
)

// moviesParams binds GET /api/v1/movies query parameters for validation.
type moviesParams struct {
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

// Movies handles paginated catalog listing.
//
// @Summary List catalog movies
// @Description Returns one page of the movie catalog ordered by id, with the
// @Description total catalog size for pagination.
// @Tags Movies
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Movies per page (1-100, default 10)"
// @Success 200 {object} models.MoviesPage "One catalog page"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Catalog query failed"
// @Router /api/v1/movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	page, err := parseIntParam(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	pageSize, err := parseIntParam(r, "page_size", database.DefaultPageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	params := moviesParams{Page: page, PageSize: pageSize}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	result, err := h.db.ListMovies(ctx, page, pageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list movies", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// MovieByID handles single movie lookup by catalog id.
//
// @Summary Get a movie by id
// @Description Returns the full catalog record for one movie.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Catalog movie id"
// @Success 200 {object} models.MovieRecord "The movie record"
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 404 {object} models.APIResponse "No movie with that id"
// @Failure 500 {object} models.APIResponse "Catalog query failed"
// @Router /api/v1/movies/{id} [get]
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	movie, err := h.db.GetMovieByID(ctx, id)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

// genreParams binds GET /api/v1/movies/genre/{genre} parameters for
// validation.
type genreParams struct {
	Genre string `validate:"required,min=1,max=100"`
	Limit int    `validate:"gte=1,lte=100"`
}

// MoviesByGenre handles genre-filtered catalog listing.
//
// @Summary List movies by genre
// @Description Returns movies whose genre list contains the given genre
// @Description (case-insensitive substring match), ordered by vote count.
// @Tags Movies
// @Accept json
// @Produce json
// @Param genre path string true "Genre name, e.g. Drama"
// @Param limit query int false "Maximum results (1-100, default 50)"
// @Success 200 {object} models.GenreMovies "Movies in the genre"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Catalog query failed"
// @Router /api/v1/movies/genre/{genre} [get]
func (h *Handler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	genre := strings.TrimSpace(chi.URLParam(r, "genre"))
	limit, err := parseIntParam(r, "limit", database.DefaultGenreLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	params := genreParams{Genre: genre, Limit: limit}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	result, err := h.db.ListMoviesByGenre(ctx, genre, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list movies by genre", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
