// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package validation

// MovieIDs holds the movie identifiers accepted so far, in acceptance order.
// A nil *MovieIDs behaves as an empty collection.
type MovieIDs struct {
	ids  []string
	seen map[string]struct{}
}

// NewMovieIDs returns an accumulator pre-filled with ids.
func NewMovieIDs(ids ...string) *MovieIDs {
	m := &MovieIDs{seen: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		m.Add(id)
	}
	return m
}

// Add records an accepted identifier. Duplicates are kept in order.
func (m *MovieIDs) Add(id string) {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	m.ids = append(m.ids, id)
	m.seen[id] = struct{}{}
}

// Contains reports whether id was accepted before (exact match).
func (m *MovieIDs) Contains(id string) bool {
	if m == nil {
		return false
	}
	_, ok := m.seen[id]
	return ok
}

// Values returns a copy of the accepted identifiers in acceptance order.
func (m *MovieIDs) Values() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// Len returns the number of accepted identifiers.
func (m *MovieIDs) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ids)
}

// UserIDs is the set of user identifiers accepted so far.
// A nil *UserIDs behaves as an empty set.
type UserIDs struct {
	seen map[string]struct{}
}

// NewUserIDs returns a set pre-filled with ids.
func NewUserIDs(ids ...string) *UserIDs {
	u := &UserIDs{seen: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		u.Add(id)
	}
	return u
}

// Add records an accepted identifier.
func (u *UserIDs) Add(id string) {
	if u.seen == nil {
		u.seen = make(map[string]struct{})
	}
	u.seen[id] = struct{}{}
}

// Contains reports whether id was accepted before.
func (u *UserIDs) Contains(id string) bool {
	if u == nil {
		return false
	}
	_, ok := u.seen[id]
	return ok
}

// Len returns the number of accepted identifiers.
func (u *UserIDs) Len() int {
	if u == nil {
		return 0
	}
	return len(u.seen)
}
