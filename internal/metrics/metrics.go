// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package metrics provides Prometheus instrumentation for Reelrank:
// API latency and throughput, DuckDB query performance, model build
// lifecycle, and title resolution outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Database metrics

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Model build metrics

	ModelBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_builds_total",
			Help: "Total number of recommendation model builds",
		},
		[]string{"result"},
	)

	ModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_build_duration_seconds",
			Help:    "Duration of recommendation model builds in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	ModelMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_movies",
			Help: "Number of movies in the active model snapshot",
		},
	)

	ModelVocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_terms",
			Help: "Vocabulary size of the active model snapshot",
		},
	)

	ModelLastBuildSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_last_build_success_timestamp",
			Help: "Unix timestamp of the last successful model build",
		},
	)

	// Resolution and recommendation metrics

	ResolveOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_resolve_outcomes_total",
			Help: "Title resolution outcomes by kind",
		},
		[]string{"outcome"}, // exact, fuzzy, not_found
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "title_search_duration_seconds",
			Help:    "Title search duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

// Resolution outcome label values.
const (
	ResolveExact    = "exact"
	ResolveFuzzy    = "fuzzy"
	ResolveNotFound = "not_found"
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery records a database query and any error.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordModelBuild records a model build attempt and, on success, the
// resulting snapshot dimensions.
func RecordModelBuild(duration time.Duration, movies, vocabularyTerms int, err error) {
	ModelBuildDuration.Observe(duration.Seconds())
	if err != nil {
		ModelBuildsTotal.WithLabelValues("failure").Inc()
		return
	}
	ModelBuildsTotal.WithLabelValues("success").Inc()
	ModelMovies.Set(float64(movies))
	ModelVocabularyTerms.Set(float64(vocabularyTerms))
	ModelLastBuildSuccess.Set(float64(time.Now().Unix()))
}

// RecordResolveOutcome records a title resolution outcome.
// Use the Resolve* constants for the outcome label.
func RecordResolveOutcome(outcome string) {
	ResolveOutcomes.WithLabelValues(outcome).Inc()
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
