// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package metrics provides Prometheus metrics for a recommendation run.

Each run creates its own Recorder backed by a dedicated registry. When
METRICS_TEXTFILE is set the collectors are written in Prometheus text format
at the end of the run, ready for the node_exporter textfile collector.

# Available Metrics

Loader Metrics:
  - moviematch_records_loaded_total: Accepted records (counter)
    Labels: kind (movie, user)
  - moviematch_lines_skipped_total: Header lines with a wrong field count (counter)
    Labels: kind

Validation Metrics:
  - moviematch_validation_failures_total: Rejected records (counter)
    Labels: rule (movie_title, movie_id_letters, user_id_unique, ...)

Recommendation Metrics:
  - moviematch_recommendations_emitted_total: Recommended titles (counter)
  - moviematch_users_without_recommendations_total: Users with no match (counter)
  - moviematch_recommendations_per_user: Titles per user (histogram)

Run Metrics:
  - moviematch_run_duration_seconds: Duration of the last run (gauge)
  - moviematch_runs_completed_total: Runs by status (counter)
    Labels: status (ok, validation_failed, io_error)
  - moviematch_last_run_success_timestamp: Last run that wrote output (gauge)

# Usage

	rec := metrics.New()
	rec.RecordLoaded(metrics.KindMovie)
	rec.RecordRun(time.Since(start), metrics.StatusOK)
	if err := rec.WriteTextfile("/var/lib/node_exporter/moviematch.prom"); err != nil {
	    logging.Warn().Err(err).Msg("Failed to export metrics")
	}

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
