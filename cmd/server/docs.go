// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package main provides the Reelrank HTTP server
//
// Reelrank serves content-based movie recommendations computed from
// catalog metadata, with fuzzy title search and a rebuildable model.
//
// @title Reelrank API
// @version 1.0
// @description Content-based movie recommendation service over IMDb-style catalog metadata
// @description
// @description ## Features
// @description
// @description - **Recommendations**: TF-IDF over genres, directors, writers and cast; cosine-similarity ranking
// @description - **Fuzzy Title Resolution**: trigram matching resolves noisy queries ("Th3 M4trx") to catalog titles
// @description - **Title Search**: ranked title matches with similarity scores
// @description - **Catalog Browsing**: paginated movie listing, by-id lookup, by-genre filtering
// @description - **Model Lifecycle**: rebuild on demand, scheduled retraining, persisted snapshots
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 120 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-20T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelrank/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and service status
//
// @tag.name Recommendations
// @tag.description Content-based movie recommendations for a query title
//
// @tag.name Search
// @tag.description Fuzzy title search over the catalog
//
// @tag.name Movies
// @tag.description Catalog browsing endpoints (list, by id, by genre)
//
// @tag.name Model
// @tag.description Model training status and rebuild triggers
package main
