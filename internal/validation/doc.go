// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a
// thread-safe singleton validator instance with user-friendly error messages.
// It integrates with the API error envelope for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - APIError conversion matching the API envelope format
//   - WithRequiredStructEnabled option (v11+ compatibility)
//
// # Quick Start
//
//	type RecommendParams struct {
//	    Title string  `validate:"required,min=1"`
//	    K     int     `validate:"omitempty,gte=1,lte=50"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    params := parseRecommendParams(r)
//
//	    if verr := validation.ValidateStruct(&params); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	        return
//	    }
//
//	    // proceed with valid params
//	}
//
// The query-parameter structs validated here live next to their handlers in
// internal/api; their tag bounds mirror the documented API limits (k in
// [1,50], search limit in [1,50], min_similarity in [0.1,1.0], page_size in
// [1,100]).
package validation
