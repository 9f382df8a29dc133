// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/database"
	"github.com/tomtom215/reelrank/internal/recommend"
)

// Service identity reported by the root banner and health endpoints.
const (
	serviceName    = "Reelrank"
	serviceVersion = "1.0.0"
)

// queryTimeout bounds a single request's catalog or engine work.
const queryTimeout = 10 * time.Second

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db     *database.DB
	engine *recommend.Engine
	config *config.Config

	startTime time.Time
}

// NewHandler creates the API handler. db and engine may be nil in tests;
// handlers guard with requireDB and requireEngine.
func NewHandler(db *database.DB, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}

// requireMethod validates the HTTP method and sends an error response if
// it does not match.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return false
	}
	return true
}

// requireDB checks catalog database availability before queries.
func (h *Handler) requireDB(w http.ResponseWriter) bool {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database not available", nil)
		return false
	}
	return true
}

// requireEngine checks recommendation engine availability. A constructed
// engine without a trained model passes; that case surfaces later as
// MODEL_NOT_READY instead.
func (h *Handler) requireEngine(w http.ResponseWriter) bool {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "MODEL_NOT_READY", "Recommendation engine not available", nil)
		return false
	}
	return true
}
