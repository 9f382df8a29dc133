// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package api implements the HTTP layer of the Reelrank service using the
// Chi router.
//
// Endpoint groups under /api/v1:
//
//   - /recommend             content-based recommendations for a title query
//   - /search                fuzzy title search over the catalog
//   - /movies, /movies/{id}  paginated catalog access
//   - /movies/genre/{genre}  catalog filtered by genre substring
//   - /model/status          training state and snapshot details
//   - /model/rebuild         manual model rebuild trigger
//   - /health, /health/live, /health/ready
//
// Plus /metrics (Prometheus) and /swagger/* (OpenAPI UI) at the root.
//
// Response conventions: recommendation, search, and catalog endpoints serve
// their documented payload shapes at the top level. Operational endpoints
// (model status, rebuild, health) and every error response use the
// models.APIResponse envelope. Engine and database sentinel errors map to
// stable error codes; see respondEngineError.
//
// Query parameters are parsed strictly: a malformed number is a 400, never
// silently replaced with the default. Bounds are enforced through
// go-playground/validator tags on per-endpoint param structs.
package api
