// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/reelrank/internal/recommend"
)

// modelStatusEnvelope mirrors the response envelope with typed status data.
type modelStatusEnvelope struct {
	Status string                   `json:"status"`
	Data   recommend.TrainingStatus `json:"data"`
}

// waitForModelLoaded polls until the engine installs a snapshot, so an
// asynchronous rebuild finishes before the test tears down.
func waitForModelLoaded(t *testing.T, engine *recommend.Engine) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		status := engine.Status()
		if status.ModelLoaded && !status.IsTraining {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("model not loaded before deadline")
}

func TestModelStatus_ReportsTrainedModel(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ModelStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/model/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp modelStatusEnvelope
	decodeBody(t, rec, &resp)

	if resp.Status != "success" {
		t.Errorf("envelope status = %q, want %q", resp.Status, "success")
	}
	if !resp.Data.ModelLoaded {
		t.Error("model_loaded = false, want true")
	}
	if resp.Data.IsTraining {
		t.Error("is_training = true, want false")
	}
	if resp.Data.MovieCount != 4 {
		t.Errorf("movie_count = %d, want 4", resp.Data.MovieCount)
	}
	if resp.Data.VocabularySize == 0 {
		t.Error("vocabulary_size = 0, want > 0")
	}
	if resp.Data.ModelVersion == "" {
		t.Error("model_version empty, want set")
	}
	if resp.Data.LastTrainedAt.IsZero() {
		t.Error("last_trained_at zero, want set")
	}
}

func TestModelStatus_UntrainedEngine(t *testing.T) {
	handler := NewHandler(nil, newUntrainedEngine(t), newTestConfig())

	rec := httptest.NewRecorder()
	handler.ModelStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/model/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp modelStatusEnvelope
	decodeBody(t, rec, &resp)

	if resp.Data.ModelLoaded {
		t.Error("model_loaded = true, want false before training")
	}
	if resp.Data.MovieCount != 0 {
		t.Errorf("movie_count = %d, want 0 before training", resp.Data.MovieCount)
	}
}

func TestModelStatus_NilEngine(t *testing.T) {
	handler := NewHandler(nil, nil, newTestConfig())

	rec := httptest.NewRecorder()
	handler.ModelStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/model/status", nil))

	assertErrorResponse(t, rec, http.StatusServiceUnavailable, "MODEL_NOT_READY")
}

func TestModelStatus_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ModelStatus(rec, httptest.NewRequest(http.MethodPost, "/api/v1/model/status", nil))

	assertErrorResponse(t, rec, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func TestModelRebuild_Accepted(t *testing.T) {
	engine := newUntrainedEngine(t)
	handler := NewHandler(nil, engine, newTestConfig())

	rec := httptest.NewRecorder()
	handler.ModelRebuild(rec, httptest.NewRequest(http.MethodPost, "/api/v1/model/rebuild", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusAccepted, rec.Body.String())
	}

	var resp struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if resp.Status != "success" {
		t.Errorf("envelope status = %q, want %q", resp.Status, "success")
	}
	if got := resp.Data["message"]; got != "Model rebuild started" {
		t.Errorf("message = %q, want %q", got, "Model rebuild started")
	}

	waitForModelLoaded(t, engine)
}

func TestModelRebuild_ThrottledWhenRepeated(t *testing.T) {
	engine := newTrainedEngine(t)
	handler := NewHandler(nil, engine, newTestConfig())

	first := httptest.NewRecorder()
	handler.ModelRebuild(first, httptest.NewRequest(http.MethodPost, "/api/v1/model/rebuild", nil))
	if first.Code != http.StatusAccepted {
		t.Fatalf("first rebuild status = %d, want %d", first.Code, http.StatusAccepted)
	}

	second := httptest.NewRecorder()
	handler.ModelRebuild(second, httptest.NewRequest(http.MethodPost, "/api/v1/model/rebuild", nil))
	assertErrorResponse(t, second, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED")

	waitForModelLoaded(t, engine)
}

func TestModelRebuild_NilEngine(t *testing.T) {
	handler := NewHandler(nil, nil, newTestConfig())

	rec := httptest.NewRecorder()
	handler.ModelRebuild(rec, httptest.NewRequest(http.MethodPost, "/api/v1/model/rebuild", nil))

	assertErrorResponse(t, rec, http.StatusServiceUnavailable, "MODEL_NOT_READY")
}

func TestModelRebuild_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ModelRebuild(rec, httptest.NewRequest(http.MethodGet, "/api/v1/model/rebuild", nil))

	assertErrorResponse(t, rec, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}
