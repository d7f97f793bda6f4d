// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package output writes the artifacts of a run: the plain-text
// recommendations file and the optional JSON run report.
//
// Text format on success, two lines per user:
//
//	John Doe,123456789
//	Inception
//	Jane Smith,987654321
//	The Matrix
//
// On a validation failure the file holds only the error line, for example
// "ERROR: Movie Title the matrix is wrong".
package output
