// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package logging provides the zerolog-based structured logger shared by
// every Moviematch component.
//
// # Overview
//
//   - A global logger configured once from main with Init
//   - JSON output (default) or human-readable console output, always on
//     stderr unless configured otherwise
//   - Run ID propagation through context.Context
//   - A slog.Handler adapter for the suture supervisor (via sutureslog)
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	})
//
//	ctx = logging.ContextWithRunID(ctx, logging.NewRunID())
//	logging.Ctx(ctx).Info().Str("movies", path).Msg("Loading catalog")
//
// Components take a zerolog.Logger in their constructor and add their own
// "component" field, so tests can pass zerolog.Nop().
//
// # Configuration
//
// Environment Variables (read by the config package):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
package logging
