// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package models

// HealthStatus reports overall service health for GET /api/v1/health.
//
// Status is "healthy" when the catalog database answers pings and a model
// snapshot is serving, "degraded" otherwise. Uptime is in seconds.
type HealthStatus struct {
	Status            string  `json:"status"`
	Service           string  `json:"service"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	ModelLoaded       bool    `json:"model_loaded"`
	ModelVersion      string  `json:"model_version,omitempty"`
	MovieCount        int     `json:"movie_count"`
	Uptime            float64 `json:"uptime"`
}
