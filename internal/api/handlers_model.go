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

// ModelStatus handles training status requests.
//
// @Summary Get model training status
// @Description Returns the training state and the installed snapshot's
// @Description version, corpus size, vocabulary size, and build timings.
// @Tags Model
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=recommend.TrainingStatus} "Training status"
// @Failure 503 {object} models.APIResponse "Engine not available"
// @Router /api/v1/model/status [get]
func (h *Handler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireEngine(w) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.engine.Status(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// ModelRebuild handles manual model rebuild triggers.
//
// @Summary Trigger a model rebuild
// @Description Starts an asynchronous rebuild of the recommendation model
// @Description from the current catalog. The previous model keeps serving
// @Description until the new one is installed.
// @Tags Model
// @Accept json
// @Produce json
// @Success 202 {object} models.APIResponse "Rebuild started"
// @Failure 409 {object} models.APIResponse "Training already in progress"
// @Failure 429 {object} models.APIResponse "Rebuild triggered too soon"
// @Failure 503 {object} models.APIResponse "Engine not available"
// @Router /api/v1/model/rebuild [post]
func (h *Handler) ModelRebuild(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireEngine(w) {
		return
	}

	if err := h.engine.TriggerRebuild(); err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"message": "Model rebuild started",
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
