// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Input      InputConfig      `koanf:"input"`
	Output     OutputConfig     `koanf:"output"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// InputConfig names the two record files.
type InputConfig struct {
	// MoviesPath is the movies file ("Title,Id" / genres pairs).
	MoviesPath string `koanf:"movies_path" validate:"required,notblank"`

	// UsersPath is the users file ("Name,Id" / liked ids pairs).
	// It is not opened when a movie record is invalid.
	UsersPath string `koanf:"users_path" validate:"required,notblank"`
}

// OutputConfig names the artifacts of a run.
type OutputConfig struct {
	// Path receives the recommendations or the single error line.
	Path string `koanf:"path" validate:"required,notblank"`

	// ReportPath receives the JSON run report. Empty disables it.
	ReportPath string `koanf:"report_path"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// GenreMatch is "normalized" (case-insensitive, trimmed) or "exact".
	GenreMatch string `koanf:"genre_match" validate:"required,oneof=normalized exact"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// TextfilePath receives the run metrics in Prometheus text format,
	// for the node_exporter textfile collector. Empty disables it.
	TextfilePath string `koanf:"textfile_path"`
}

// SupervisorConfig holds supervisor tree settings.
type SupervisorConfig struct {
	// ShutdownTimeout bounds how long the tree waits for the pipeline
	// service to stop after a signal.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings, passed to logging.Init.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads the layered configuration: defaults, then the config file,
// then environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
