// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package database provides the DuckDB-backed corpus store for the movie
// catalog.
//
// # Overview
//
// This package is the data layer between the application and DuckDB. It
// owns the movies table, ingests the CSV dataset on first start, and serves
// the catalog queries behind the HTTP API as well as the ordered corpus
// snapshot consumed by model training.
//
// # Architecture
//
//   - database.go: connection lifecycle (open, pool tuning, checkpoint, close)
//     and prepared statement caching
//   - movies.go: movies table schema, dataset ingest, catalog queries, and
//     the training corpus snapshot
//
// The catalog is read-only at query time. Writes happen only during ingest,
// which runs once when the movies table is empty.
package database
