// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package validation judges input records and configuration structs.
//
// # Overview
//
// The package provides:
//   - Record rules for movie titles, movie ids, user names and user ids
//   - Ordered (MovieIDs) and set (UserIDs) accumulators of accepted ids
//   - A thread-safe go-playground/validator singleton for struct validation
//
// # Record Rules
//
// Each rule returns nil when the value is valid, or a *RuleError whose
// message is the exact line written to the output file:
//
//	ValidateMovieTitle("the matrix")
//	// ERROR: Movie Title the matrix is wrong
//
//	ValidateMovieID("TM12", "The Matrix", ids)
//	// ERROR: Movie Id numbers TM12 are wrong
//
//	ValidateUserName(" John")
//	// ERROR: User Name  John is wrong
//
//	ValidateUserID("123456789", seen)
//	// ERROR: User Id 123456789 isn't unique   (when already seen)
//
// Uniqueness is incremental: callers pass the accumulator holding every id
// accepted so far, and add the id once it is accepted.
//
// Movie id numbers are unique across the whole catalog regardless of their
// letters, so "I123" is rejected once "TM123" was accepted.
//
// # Error Types
//
// RuleError carries the rule that failed (used as a metrics label) and the
// offending value:
//
//	var ruleErr *validation.RuleError
//	if errors.As(err, &ruleErr) {
//	    metrics.ValidationFailures.WithLabelValues(string(ruleErr.Rule)).Inc()
//	}
//
// StructValidationError aggregates go-playground field errors with
// human-readable messages:
//
//	if verr := validation.ValidateStruct(cfg); verr != nil {
//	    return fmt.Errorf("invalid configuration: %w", verr)
//	}
//
// # Thread Safety
//
// Record rules are pure functions. Accumulators are not safe for concurrent
// use; a loader owns one of each per run.
package validation
