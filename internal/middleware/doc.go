// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package middleware provides HTTP middleware components for the service.

This package implements infrastructure middleware for request ID tracking,
Prometheus metrics instrumentation, and gzip compression. The api package
adapts these to Chi's middleware signature and assembles the full stack;
CORS and rate limiting live there on the go-chi implementations.

Key Components:

  - RequestID: UUID-based request tracking for log correlation
  - PrometheusMetrics: HTTP request/response instrumentation by route
  - Compression: Gzip compression for clients that accept it

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape so a
stack can also be composed without a router:

	http.HandleFunc("/api/v1/movies",
	    middleware.PrometheusMetrics(
	        middleware.Compression(
	            middleware.RequestID(handler),
	        ),
	    ),
	)
*/
package middleware
