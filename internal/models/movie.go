// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

// Movie is one validated catalog entry.
type Movie struct {
	title  string
	id     string
	genres []string
}

// NewMovie creates a movie. The genre slice is copied so later changes by
// the caller do not leak into the catalog.
func NewMovie(title, id string, genres []string) Movie {
	g := make([]string, len(genres))
	copy(g, genres)
	return Movie{title: title, id: id, genres: g}
}

// Title returns the movie title.
func (m Movie) Title() string {
	return m.title
}

// ID returns the movie identifier (e.g. "TM123").
func (m Movie) ID() string {
	return m.id
}

// Genres returns a copy of the declared genres, in declaration order.
func (m Movie) Genres() []string {
	g := make([]string, len(m.genres))
	copy(g, m.genres)
	return g
}

// HasGenre reports whether any declared genre matches genre,
// ignoring case and surrounding whitespace.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.genres {
		if GenresMatch(g, genre) {
			return true
		}
	}
	return false
}
