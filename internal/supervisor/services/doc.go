// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package services provides suture.Service wrappers for Reelrank components.

Each wrapper adapts a component lifecycle (ListenAndServe, train loop) to
suture's context-aware Serve contract:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Retrain (RetrainService):
  - Owns the model lifecycle: snapshot restore, initial build, periodic rebuilds
  - Keeps the previous snapshot serving through failed builds
  - Publishes the next scheduled run for the status endpoint

# Error Handling

Return values determine supervisor behavior:

	nil       -> service stopped cleanly, will not restart
	error     -> service crashed, supervisor restarts it
	ctx.Err() -> shutdown requested, normal termination

# Usage

	tree, _ := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	tree.AddModelService(services.NewRetrainService(engine, retrainCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.Serve(ctx)
*/
package services
