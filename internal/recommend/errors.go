// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package recommend

import "errors"

// Sentinel errors returned by the engine. The HTTP layer maps these to
// status codes; callers test them with errors.Is.
var (
	// ErrNotFound indicates the query title resolved to no catalog entry,
	// or a requested movie id does not exist.
	ErrNotFound = errors.New("movie not found")

	// ErrEmptyQuery indicates the query was blank or shorter than two
	// characters after trimming. Rejected before resolution.
	ErrEmptyQuery = errors.New("query must be at least 2 characters")

	// ErrModelNotLoaded indicates no model snapshot has been installed
	// yet (no successful training run and nothing loaded from the store).
	ErrModelNotLoaded = errors.New("recommendation model not loaded")

	// ErrTrainingInProgress indicates a rebuild was requested while
	// another training run holds the training lock.
	ErrTrainingInProgress = errors.New("training already in progress")

	// ErrRebuildThrottled indicates a manual rebuild was triggered faster
	// than the configured minimum interval.
	ErrRebuildThrottled = errors.New("rebuild triggered too soon")

	// ErrEmptyCorpus indicates the training pipeline found no movies.
	// The previous snapshot, if any, keeps serving.
	ErrEmptyCorpus = errors.New("training corpus is empty")
)
