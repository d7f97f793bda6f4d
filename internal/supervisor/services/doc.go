// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package services provides suture.Service wrappers for Moviematch components.

# Available Services

Pipeline (PipelineService):
  - Runs one pipeline pass and returns suture.ErrTerminateSupervisorTree,
    so the whole tree stops once the output file is written
  - Stores the outcome or error for the caller (Result, Done)
  - Returns the context error when the run was interrupted by shutdown

# Usage

	svc := services.NewPipelineService(p, logging.Logger())
	tree.AddService(svc)
	_ = tree.Serve(ctx)

	outcome, err := svc.Result()
*/
package services
