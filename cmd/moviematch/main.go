// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/pipeline"
	"github.com/tomtom215/moviematch/internal/recommend"
	"github.com/tomtom215/moviematch/internal/supervisor"
	"github.com/tomtom215/moviematch/internal/supervisor/services"
)

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Default logger, config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingConfig())
	logging.Debug().
		Str("log_level", logging.GetLevel().String()).
		Str("genre_match", cfg.Recommend.GenreMatch).
		Dur("shutdown_timeout", cfg.Supervisor.ShutdownTimeout).
		Msg("Configuration loaded")

	os.Exit(run(cfg))
}

// run executes one supervised pipeline pass and returns the exit code.
func run(cfg *config.Config) int {
	log := logging.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pcfg, err := pipelineConfig(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Invalid pipeline configuration")
		return exitFailure
	}

	p, err := pipeline.New(pcfg, logging.Logger())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create pipeline")
		return exitFailure
	}

	// sutureslog needs a *slog.Logger; the adapter keeps zerolog as the sink.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create supervisor tree")
		return exitFailure
	}

	svc := services.NewPipelineService(p, logging.Logger())
	tree.AddPipelineService(svc)

	log.Info().
		Str("movies", pcfg.MoviesPath).
		Str("users", pcfg.UsersPath).
		Str("output", pcfg.OutputPath).
		Msg("Starting Moviematch")

	if err := tree.Serve(ctx); err != nil &&
		!errors.Is(err, suture.ErrTerminateSupervisorTree) && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		log.Warn().Str("service", u.Name).Msg("Service failed to stop")
	}

	return exitCode(svc.Result())
}

// pipelineConfig maps the loaded configuration onto the pipeline's.
func pipelineConfig(cfg *config.Config) (pipeline.Config, error) {
	mode, err := recommend.ParseGenreMatch(cfg.Recommend.GenreMatch)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		MoviesPath:      cfg.Input.MoviesPath,
		UsersPath:       cfg.Input.UsersPath,
		OutputPath:      cfg.Output.Path,
		ReportPath:      cfg.Output.ReportPath,
		MetricsTextfile: cfg.Metrics.TextfilePath,
		GenreMatch:      mode,
	}, nil
}

// exitCode maps a run result to the process exit code. A run that wrote
// the validation error line succeeded.
func exitCode(outcome *pipeline.Outcome, err error) int {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logging.Warn().Msg("Run interrupted")
		} else {
			logging.Err(err).Msg("Run failed")
		}
		return exitFailure
	}
	if outcome == nil {
		return exitFailure
	}
	return exitOK
}
