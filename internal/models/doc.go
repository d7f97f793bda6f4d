// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package models defines the data structures shared by the loader, the
recommendation engine and the output writers.

Key Components:

  - Movie: title, identifier and declared genres of one catalog entry
  - User: name, identifier and the ordered list of liked movie identifiers
  - NormalizeGenre: the single genre normalization used for every comparison

Movies are immutable once constructed. Users only change while loading, when
liked movie identifiers are appended; the list can also be replaced wholesale.

Usage Example:

	movie := models.NewMovie("The Matrix", "TM123", []string{"Action", "Sci-Fi"})
	movie.HasGenre(" sci-fi ") // true

	user := models.NewUser("John Doe", "123456789")
	user.AddLikedMovieID("TM123")
	user.Likes("TM123") // true

Thread Safety:

Models carry no locks. They are built and read by a single pipeline run.
*/
package models
