// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

import (
	"time"
)

// APIResponse is the standardized envelope for error responses and for
// operational endpoints (model status, rebuild). Recommendation, search,
// and catalog endpoints serve their documented payloads at the top level
// without this wrapper.
//
// Status field values:
//   - "success": Request completed, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "movie 'The Matrxi' not found",
//	    "details": {"title": "The Matrxi"}
//	  },
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS is the server-side processing time in milliseconds and is
// omitted when zero.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters (HTTP 400)
//   - NOT_FOUND: Resource or title does not exist (HTTP 404)
//   - TRAINING_IN_PROGRESS: A model rebuild is already running (HTTP 409)
//   - RATE_LIMIT_EXCEEDED: Rebuild triggered too soon (HTTP 429)
//   - MODEL_NOT_READY: No trained model available yet (HTTP 503)
//   - DATABASE_ERROR: Catalog query failure (HTTP 500)
//   - INTERNAL_ERROR: Unexpected failure (HTTP 500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
