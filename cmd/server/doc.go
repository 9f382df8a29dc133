// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package main is the entry point for the Reelrank server.

Reelrank is a self-hosted movie recommendation service. It builds TF-IDF
feature vectors from catalog metadata (genres, directors, writers, cast),
ranks movies by cosine similarity against a query title, and resolves noisy
user-typed titles to catalog entries with trigram fuzzy matching.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("reelrank")
	├── ModelSupervisor ("model-layer")
	│   └── Retrain Service (snapshot restore, initial build, scheduled rebuilds)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router, REST API + Swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB catalog, CSV dataset ingest on first boot
 4. Supervisor Tree: Suture v4 with sutureslog event logging
 5. Recommendation Engine: model store attach, retrain service registration
 6. HTTP Server: Chi router with middleware stack

The HTTP server starts serving before the first model build completes;
recommendation endpoints answer 503 until a snapshot is installed (restored
from the model store or built from the corpus).

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority
wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_HOST=0.0.0.0
	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Catalog
	DUCKDB_PATH=data/reelrank.duckdb
	DATASET_PATH=data/imdb_top_1000.csv

	# Model lifecycle
	RECOMMEND_TRAIN_ON_STARTUP=true
	RECOMMEND_TRAIN_INTERVAL=24h
	MODEL_STORE_ENABLED=true
	MODEL_STORE_PATH=data/models

	# Title resolution
	RESOLVER_FUZZY_THRESHOLD=0.30

A YAML config file is read from CONFIG_PATH or the first of config.yaml,
config.yml, /etc/reelrank/config.yaml, /etc/reelrank/config.yml that exists.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:
  - Stops accepting new connections
  - Waits for in-flight requests to complete (shutdown timeout, default 10s)
  - Persists nothing on the way down: the catalog and model snapshots are
    already durable in DuckDB and the model store
  - Closes the model store and database connections

# Example Usage

Run with an IMDb-style CSV and defaults:

	export DATASET_PATH=data/imdb_top_1000.csv
	./reelrank

Docker:

	docker run -d \
	  -v $(pwd)/data:/data \
	  -e DUCKDB_PATH=/data/reelrank.duckdb \
	  -e DATASET_PATH=/data/imdb_top_1000.csv \
	  -p 8080:8080 \
	  ghcr.io/tomtom215/reelrank
*/
package main
