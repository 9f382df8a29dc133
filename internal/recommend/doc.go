// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package recommend implements the content-based recommendation engine.

The engine holds an immutable model snapshot assembled by the training
pipeline: feature documents from movie metadata (package feature), a fitted
TF-IDF vector space (package tfidf), an inverted similarity index, and a
title resolver (package resolve). Requests read the snapshot through an
atomic pointer, so serving never blocks on training; a rebuild assembles a
complete replacement off to the side and swaps it in one step. A failed
rebuild leaves the previous snapshot serving.

Model snapshots can be persisted and reloaded across restarts through the
ModelStore interface (package store provides the Badger implementation), so
a restarted server can serve immediately instead of retraining first.

Training data arrives through the DataProvider interface, implemented by
the database layer, keeping this package free of storage concerns.
*/
package recommend
