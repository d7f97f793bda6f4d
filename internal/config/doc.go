// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package config provides layered configuration for Moviematch.

# Configuration Sources

Sources are applied in order, later ones winning:

 1. Built-in defaults
 2. A YAML file: CONFIG_PATH, or the first of moviematch.yaml,
    moviematch.yml, /etc/moviematch/config.yaml that exists
 3. Environment variables

# Environment Variables

  - MOVIES_PATH: movies file (default: movies.txt)
  - USERS_PATH: users file (default: users.txt)
  - OUTPUT_PATH: recommendations file (default: recommendations.txt)
  - REPORT_PATH: JSON run report, disabled when empty
  - GENRE_MATCH: normalized or exact (default: normalized)
  - METRICS_TEXTFILE: Prometheus textfile output, disabled when empty
  - SHUTDOWN_TIMEOUT: supervisor shutdown timeout (default: 10s)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER: see the logging package

# Example File

	input:
	  movies_path: data/movies.txt
	  users_path: data/users.txt
	output:
	  path: out/recommendations.txt
	  report_path: out/report.json
	recommend:
	  genre_match: exact
	logging:
	  level: debug
	  format: console

# Validation

Load validates struct tags through the validation package and then checks
that no output overwrites an input and that logging values are known.
*/
package config
