// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/pipeline"
	"github.com/tomtom215/moviematch/internal/recommend"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Input: config.InputConfig{
			MoviesPath: filepath.Join(dir, "movies.txt"),
			UsersPath:  filepath.Join(dir, "users.txt"),
		},
		Output: config.OutputConfig{
			Path: filepath.Join(dir, "recommendations.txt"),
		},
		Recommend: config.RecommendConfig{GenreMatch: "normalized"},
		Supervisor: config.SupervisorConfig{
			ShutdownTimeout: time.Second,
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestPipelineConfig(t *testing.T) {
	cfg := testConfig("/data")
	cfg.Output.ReportPath = "/data/report.json"
	cfg.Metrics.TextfilePath = "/data/moviematch.prom"
	cfg.Recommend.GenreMatch = "exact"

	got, err := pipelineConfig(cfg)
	if err != nil {
		t.Fatalf("pipelineConfig() error = %v", err)
	}

	want := pipeline.Config{
		MoviesPath:      filepath.Join("/data", "movies.txt"),
		UsersPath:       filepath.Join("/data", "users.txt"),
		OutputPath:      filepath.Join("/data", "recommendations.txt"),
		ReportPath:      "/data/report.json",
		MetricsTextfile: "/data/moviematch.prom",
		GenreMatch:      recommend.GenreMatchExact,
	}
	if got != want {
		t.Errorf("pipelineConfig() = %+v, want %+v", got, want)
	}
}

func TestPipelineConfig_BadGenreMatch(t *testing.T) {
	cfg := testConfig("/data")
	cfg.Recommend.GenreMatch = "fuzzy"

	if _, err := pipelineConfig(cfg); err == nil {
		t.Error("pipelineConfig() should reject an unknown genre match mode")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		outcome *pipeline.Outcome
		err     error
		want    int
	}{
		{"ok", &pipeline.Outcome{Status: metrics.StatusOK}, nil, exitOK},
		{"validation failure", &pipeline.Outcome{Status: metrics.StatusValidationFailed, Failure: &catalog.Failure{}}, nil, exitOK},
		{"io error", nil, fmt.Errorf("failed to open movies file: %w", os.ErrNotExist), exitFailure},
		{"interrupted", nil, context.Canceled, exitFailure},
		{"no result", nil, nil, exitFailure},
		{"not finished", nil, errors.New("pipeline service has not finished a run"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.outcome, tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("writes recommendations", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)
		writeFile(t, cfg.Input.MoviesPath, "The Matrix,TM123\nAction,Sci-Fi\nInception,I456\nAction,Thriller\n")
		writeFile(t, cfg.Input.UsersPath, "John Doe,123456789\nTM123\nJane Smith,987654321\nI456\n")

		if code := run(cfg); code != exitOK {
			t.Fatalf("run() = %d, want %d", code, exitOK)
		}

		data, err := os.ReadFile(cfg.Output.Path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		want := "John Doe,123456789\nInception\nJane Smith,987654321\nThe Matrix\n"
		if string(data) != want {
			t.Errorf("output = %q, want %q", data, want)
		}
	})

	t.Run("validation failure exits zero", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)
		writeFile(t, cfg.Input.MoviesPath, "the matrix,TM123\nAction\n")

		if code := run(cfg); code != exitOK {
			t.Fatalf("run() = %d, want %d", code, exitOK)
		}

		data, err := os.ReadFile(cfg.Output.Path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		want := "ERROR: Movie Title the matrix is wrong\n"
		if string(data) != want {
			t.Errorf("output = %q, want %q", data, want)
		}
	})

	t.Run("missing movies file exits non-zero", func(t *testing.T) {
		cfg := testConfig(t.TempDir())

		if code := run(cfg); code != exitFailure {
			t.Errorf("run() = %d, want %d", code, exitFailure)
		}
		if _, err := os.Stat(cfg.Output.Path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("output should not exist, stat error = %v", err)
		}
	})
}
