// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/validation"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return withEnvHint(verr)
	}

	if err := c.validatePaths(); err != nil {
		return err
	}

	if c.Supervisor.ShutdownTimeout < 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must not be negative, got %s", c.Supervisor.ShutdownTimeout)
	}

	return c.validateLogging()
}

// fieldEnvVars maps validated struct fields to the variable that sets them.
var fieldEnvVars = map[string]string{
	"Config.Input.MoviesPath":     "MOVIES_PATH",
	"Config.Input.UsersPath":      "USERS_PATH",
	"Config.Output.Path":          "OUTPUT_PATH",
	"Config.Recommend.GenreMatch": "GENRE_MATCH",
}

// withEnvHint names the environment variables behind the failed fields.
func withEnvHint(verr *validation.StructValidationError) error {
	vars := make([]string, 0, len(verr.Errors()))
	for _, fe := range verr.Errors() {
		if name, ok := fieldEnvVars[fe.Field()]; ok {
			vars = append(vars, name)
		}
	}
	if len(vars) == 0 {
		return verr
	}
	return fmt.Errorf("%w (check %s)", verr, strings.Join(vars, ", "))
}

// validatePaths rejects output locations that would overwrite an input or
// each other.
func (c *Config) validatePaths() error {
	inputs := map[string]string{
		filepath.Clean(c.Input.MoviesPath): "MOVIES_PATH",
		filepath.Clean(c.Input.UsersPath):  "USERS_PATH",
	}

	outputs := []struct {
		name string
		path string
	}{
		{"OUTPUT_PATH", c.Output.Path},
		{"REPORT_PATH", c.Output.ReportPath},
		{"METRICS_TEXTFILE", c.Metrics.TextfilePath},
	}

	seen := make(map[string]string, len(outputs))
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		clean := filepath.Clean(out.path)
		if in, ok := inputs[clean]; ok {
			return fmt.Errorf("%s must not be the same file as %s (%s)", out.name, in, out.path)
		}
		if other, ok := seen[clean]; ok {
			return fmt.Errorf("%s must not be the same file as %s (%s)", out.name, other, out.path)
		}
		seen[clean] = out.name
	}

	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// LoggingConfig converts the logging section for logging.Init.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
