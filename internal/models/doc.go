// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package models defines data structures shared across the Reelrank application.

This package contains the movie catalog model, API request/response structures,
and the standardized response envelope. It serves as the single source of truth
for data structure definitions exchanged between the database, the
recommendation engine, and the HTTP layer.

Key Components:

  - MovieRecord: Core catalog model loaded from the IMDb dataset
  - SearchResponse / SearchResult: Fuzzy title search payloads
  - RecommendResponse / RecommendedMovie: Content-similarity payloads
  - MoviesPage / GenreMovies: Catalog browsing payloads
  - APIResponse / APIError: Standardized error envelope

Casing note: search results serialize with lowercase keys (primarytitle,
startyear) while recommendation items serialize with camelCase keys
(primaryTitle, startYear). Both shapes are part of the public API contract
and must not be unified.
*/
package models
