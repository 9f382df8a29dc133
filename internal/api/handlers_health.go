// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelrank/internal/models"
)

// Health handles health check requests.
//
// @Summary Get service health status
// @Description Returns overall health: database connectivity, model state,
// @Description and uptime. Status is "degraded" when the database is down or
// @Description no model snapshot is serving yet.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	modelLoaded := h.engine != nil && h.engine.Ready()

	status := "healthy"
	if !dbConnected || !modelLoaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Service:           serviceName,
		Version:           serviceVersion,
		DatabaseConnected: dbConnected,
		ModelLoaded:       modelLoaded,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if modelLoaded {
		engineStatus := h.engine.Status()
		health.ModelVersion = engineStatus.ModelVersion
		health.MovieCount = engineStatus.MovieCount
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of
// @Description external dependencies.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Ready means the catalog database answers and a model snapshot is serving.
//
// @Summary Readiness probe
// @Description Returns 200 OK only when the service can answer
// @Description recommendation traffic, 503 otherwise.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	modelLoaded := h.engine != nil && h.engine.Ready()
	ready := dbConnected && modelLoaded

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"model_loaded":       modelLoaded,
			"ready_to_serve":     ready,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Root handles the service banner at GET /.
//
// @Summary Service banner
// @Description Returns the service name, version, and health status.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Service identity"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}
