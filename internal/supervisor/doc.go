// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

/*
Package supervisor builds the suture v4 supervision tree for Reelrank.

The tree has two layers under a common root:

  - model: the retrain service that restores persisted snapshots and
    rebuilds the similarity model on a schedule
  - api: the HTTP server

The layering isolates failures: a crashing retrain loop is restarted by
its own supervisor while the API layer keeps serving the last installed
model snapshot.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(retrainSvc)
	tree.AddAPIService(httpSvc)
	err = tree.Serve(ctx) // blocks until ctx is canceled

Supervisor lifecycle events (service starts, failures, backoff) are
logged through sutureslog, which adapts them to log/slog.

Service implementations live in the services subpackage.
*/
package supervisor
