// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

// MoviesPage is the payload for GET /api/v1/movies (paginated catalog listing).
type MoviesPage struct {
	Movies   []MovieRecord `json:"movies"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

// GenreMovies is the payload for GET /api/v1/movies/genre/{genre}.
type GenreMovies struct {
	Genre  string        `json:"genre"`
	Movies []MovieRecord `json:"movies"`
	Count  int           `json:"count"`
}
