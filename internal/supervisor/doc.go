// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package supervisor runs Moviematch under a suture v4 supervisor tree.

# Overview

	RootSupervisor ("moviematch")
	└── PipelineSupervisor ("pipeline-layer")
	    └── PipelineService ("pipeline-service")

The pipeline service performs a single run and then returns
suture.ErrTerminateSupervisorTree, which stops the pipeline layer and the
root. A panic inside the run is recovered by suture and the service is
restarted with the usual backoff. SIGINT or SIGTERM cancels the context
passed to Serve and the tree shuts down within ShutdownTimeout.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}

	svc := services.NewPipelineService(p, logging.Logger())
	tree.AddPipelineService(svc)

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, suture.ErrTerminateSupervisorTree) {
	    logging.Warn().Err(err).Msg("Supervisor stopped")
	}

# Configuration

Zero values in TreeConfig fall back to suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Structured Logging

Supervisor events (service panics, restarts, backoff, stop timeouts) go to
the *slog.Logger through the sutureslog event hook. In the binary that
logger is backed by zerolog via logging.NewSlogLogger.

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
	}

# See Also

  - internal/supervisor/services: Service wrappers
  - github.com/thejerf/suture/v4: Underlying library
*/
package supervisor
