// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

// User is one validated user record.
type User struct {
	name          string
	id            string
	likedMovieIDs []string
}

// NewUser creates a user with no liked movies.
func NewUser(name, id string) *User {
	return &User{
		name:          name,
		id:            id,
		likedMovieIDs: make([]string, 0),
	}
}

// Name returns the user name exactly as it appeared in the input.
func (u *User) Name() string {
	return u.name
}

// ID returns the 9 character user identifier.
func (u *User) ID() string {
	return u.id
}

// LikedMovieIDs returns the liked movie identifiers in the order they were added.
// Duplicates are preserved.
func (u *User) LikedMovieIDs() []string {
	return u.likedMovieIDs
}

// AddLikedMovieID appends a liked movie identifier.
func (u *User) AddLikedMovieID(movieID string) {
	u.likedMovieIDs = append(u.likedMovieIDs, movieID)
}

// SetLikedMovieIDs replaces the liked movie identifiers.
// A nil slice is stored as an empty list.
func (u *User) SetLikedMovieIDs(movieIDs []string) {
	if movieIDs == nil {
		movieIDs = make([]string, 0)
	}
	u.likedMovieIDs = movieIDs
}

// Likes reports whether movieID is among the liked identifiers (exact match).
func (u *User) Likes(movieID string) bool {
	for _, id := range u.likedMovieIDs {
		if id == movieID {
			return true
		}
	}
	return false
}
