// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Command moviematch validates a movies file and a users file and writes
// genre-overlap recommendations for every user.
//
// # Application Architecture
//
//  1. Configuration: defaults, config file, then environment (Koanf v2)
//  2. Logging: zerolog initialized from the logging section
//  3. Supervisor: a suture tree running the pipeline service once
//  4. Pipeline: load and validate, recommend, write output, report, metrics
//
// # Configuration
//
//   - MOVIES_PATH: movies file (default movies.txt)
//   - USERS_PATH: users file (default users.txt)
//   - OUTPUT_PATH: output file (default recommendations.txt)
//   - REPORT_PATH: JSON run report, disabled when empty
//   - METRICS_TEXTFILE: Prometheus textfile, disabled when empty
//   - GENRE_MATCH: normalized or exact (default normalized)
//   - SHUTDOWN_TIMEOUT: supervisor shutdown timeout (default 10s)
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//   - CONFIG_PATH: explicit YAML config file
//
// # Exit Codes
//
// 0 when the output file was written, including the case where it holds a
// validation error line. 1 when configuration, reading or writing failed,
// or the run was interrupted by SIGINT or SIGTERM.
//
// # Example Usage
//
//	MOVIES_PATH=movies.txt USERS_PATH=users.txt ./moviematch
//	cat recommendations.txt
package main
