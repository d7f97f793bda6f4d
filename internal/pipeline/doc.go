// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package pipeline drives one Moviematch run: it opens the input files,
// loads and validates the catalog, computes recommendations when every
// record is valid, and writes the recommendations file, the optional JSON
// report and the optional metrics textfile.
//
// An invalid record is not an error of the run. Errors returned by Run are
// always read, write or cancellation failures.
package pipeline
