// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviematch/internal/pipeline"
)

// ErrNotFinished is returned by Result before the first run completes.
var ErrNotFinished = errors.New("pipeline service has not finished a run")

// PipelineRunner runs one pass of the pipeline.
type PipelineRunner interface {
	Run(ctx context.Context) (*pipeline.Outcome, error)
}

// PipelineService runs the pipeline once under suture supervision and then
// terminates the tree. A panic inside the run is recovered by suture and the
// run is attempted again; a returned error is final.
type PipelineService struct {
	runner PipelineRunner
	logger zerolog.Logger
	name   string

	mu       sync.Mutex
	outcome  *pipeline.Outcome
	err      error
	finished bool
	attempts int
	done     chan struct{}
	doneOnce sync.Once
}

// NewPipelineService creates a new pipeline service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPipelineService(runner PipelineRunner, logger zerolog.Logger) *PipelineService {
	return &PipelineService{
		runner: runner,
		logger: logger.With().Str("service", "pipeline").Logger(),
		name:   "pipeline-service",
		err:    ErrNotFinished,
		done:   make(chan struct{}),
	}
}

// Serve implements the suture.Service interface.
func (s *PipelineService) Serve(ctx context.Context) error {
	s.mu.Lock()
	s.attempts++
	attempt := s.attempts
	s.mu.Unlock()

	s.logger.Info().Int("attempt", attempt).Msg("pipeline service starting")
	start := time.Now()

	outcome, err := s.runner.Run(ctx)

	if ctx.Err() != nil && err != nil {
		// Shutdown requested; the tree is already stopping.
		s.finish(nil, err)
		s.logger.Info().Msg("pipeline service canceled")
		return ctx.Err()
	}

	s.finish(outcome, err)
	if err != nil {
		s.logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("pipeline run failed")
	} else if outcome != nil {
		s.logger.Info().Str("status", outcome.Status).Dur("duration", time.Since(start)).Msg("pipeline run complete")
	}

	return suture.ErrTerminateSupervisorTree
}

func (s *PipelineService) finish(outcome *pipeline.Outcome, err error) {
	s.mu.Lock()
	s.outcome = outcome
	s.err = err
	s.finished = true
	s.mu.Unlock()

	s.doneOnce.Do(func() { close(s.done) })
}

// Done is closed once a run has finished, successfully or not.
func (s *PipelineService) Done() <-chan struct{} {
	return s.done
}

// Result returns the outcome of the run, or the error that ended it.
// Before the run finishes it returns ErrNotFinished.
func (s *PipelineService) Result() (*pipeline.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome, s.err
}

// Attempts returns how many times Serve has been called.
func (s *PipelineService) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// String returns the service name for logging.
func (s *PipelineService) String() string {
	return s.name
}
