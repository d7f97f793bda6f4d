// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/output"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// Config names the files of a run.
type Config struct {
	MoviesPath string
	UsersPath  string
	OutputPath string

	// ReportPath enables the JSON run report when set.
	ReportPath string

	// MetricsTextfile enables the Prometheus textfile when set.
	MetricsTextfile string

	GenreMatch recommend.GenreMatch
}

// Outcome describes a run that produced its output file.
type Outcome struct {
	RunID  uuid.UUID
	Status string

	// Failure is set when a record was invalid; the output then holds only
	// its message.
	Failure *catalog.Failure

	Recommendations []recommend.Recommendation
	Duration        time.Duration

	// Metrics holds the counters of this run only.
	Metrics *metrics.Recorder
}

// Pipeline loads the catalog, computes recommendations and writes the
// output artifacts. Every Run builds its own loader, engine and recorder.
type Pipeline struct {
	config Config
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a pipeline. The genre match mode is checked here so that a
// bad configuration fails before any file is touched.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*Pipeline, error) {
	if cfg.GenreMatch == "" {
		cfg.GenreMatch = recommend.GenreMatchNormalized
	}
	if err := (&recommend.Config{GenreMatch: cfg.GenreMatch}).Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	return &Pipeline{
		config: cfg,
		logger: logger.With().Str("component", "pipeline").Logger(),
		now:    time.Now,
	}, nil
}

// Run executes one pass. A validation failure is a successful run: the
// error line is written and Outcome.Failure is set. Read and write
// failures are returned as errors.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	started := p.now()
	runID := logging.NewRunID()

	ctx = logging.ContextWithLogger(ctx, p.logger)
	ctx = logging.ContextWithRunID(ctx, runID)
	log := logging.Ctx(ctx)

	rec := metrics.New()
	loader := catalog.NewLoader(*log, rec)
	engine, err := recommend.NewEngine(&recommend.Config{GenreMatch: p.config.GenreMatch}, *log, rec)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("movies", p.config.MoviesPath).
		Str("users", p.config.UsersPath).
		Str("genre_match", string(p.config.GenreMatch)).
		Msg("run started")

	outcome := &Outcome{RunID: runID, Metrics: rec}

	result, err := p.load(ctx, loader)
	if err != nil {
		return nil, p.abort(log, rec, started, err)
	}

	if result.OK() {
		outcome.Status = metrics.StatusOK
		outcome.Recommendations, err = engine.Recommend(ctx, result.Catalog())
		if err != nil {
			return nil, p.abort(log, rec, started, err)
		}
	} else {
		outcome.Status = metrics.StatusValidationFailed
		outcome.Failure = result.Failure()
	}

	if err := output.WriteTextFile(p.config.OutputPath, result, outcome.Recommendations); err != nil {
		return nil, p.abort(log, rec, started, err)
	}

	finished := p.now()
	outcome.Duration = finished.Sub(started)

	if p.config.ReportPath != "" {
		if err := p.writeReport(runID, started, finished, result, outcome.Recommendations, rec); err != nil {
			return nil, p.abort(log, rec, started, err)
		}
	}

	rec.RecordRun(outcome.Duration, outcome.Status)
	if p.config.MetricsTextfile != "" {
		if err := rec.WriteTextfile(p.config.MetricsTextfile); err != nil {
			return nil, err
		}
	}

	event := log.Info()
	if outcome.Failure != nil {
		event = event.Str("error_line", outcome.Failure.Message())
	}
	event.
		Str("status", outcome.Status).
		Str("output", p.config.OutputPath).
		Int("users", len(outcome.Recommendations)).
		Dur("duration", outcome.Duration).
		Msg("run finished")

	return outcome, nil
}

// load opens the movies file eagerly and the users file lazily.
func (p *Pipeline) load(ctx context.Context, loader *catalog.Loader) (*catalog.Result, error) {
	movies, err := os.Open(p.config.MoviesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open movies file: %w", err)
	}
	defer movies.Close()

	users := openLazy(p.config.UsersPath)
	defer users.Close()

	result, err := loader.Load(ctx, movies, users)
	if err != nil {
		return nil, err
	}

	if !users.opened() {
		logging.Ctx(ctx).Debug().Str("users", p.config.UsersPath).Msg("users file not read")
	}

	return result, nil
}

// writeReport writes the JSON report with a snapshot of the run's counters,
// taken before the run itself is recorded.
func (p *Pipeline) writeReport(runID uuid.UUID, started, finished time.Time,
	result *catalog.Result, recs []recommend.Recommendation, rec *metrics.Recorder) error {
	report, err := output.NewReport(runID, started, finished, output.ReportInputs{
		MoviesPath: p.config.MoviesPath,
		UsersPath:  p.config.UsersPath,
	}, result, recs)
	if err != nil {
		return err
	}

	report.Metrics, err = rec.Snapshot()
	if err != nil {
		return err
	}
	return output.WriteReportFile(p.config.ReportPath, report)
}

// abort records a failed run and returns err. The metrics textfile is still
// written so that the failure is visible to monitoring.
func (p *Pipeline) abort(log *zerolog.Logger, rec *metrics.Recorder, started time.Time, err error) error {
	rec.RecordRun(p.now().Sub(started), metrics.StatusIOError)

	if p.config.MetricsTextfile != "" {
		if werr := rec.WriteTextfile(p.config.MetricsTextfile); werr != nil {
			log.Warn().Err(werr).Msg("failed to write metrics after run failure")
		}
	}

	log.Error().Err(err).Msg("run failed")
	return err
}
