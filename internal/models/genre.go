// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

import "strings"

// NormalizeGenre returns the comparison key for a genre: surrounding
// whitespace removed and lower-cased. Declared genres are never rewritten;
// the key is only used where two genres are compared.
func NormalizeGenre(genre string) string {
	return strings.ToLower(strings.TrimSpace(genre))
}

// GenresMatch reports whether two genres are equal after normalization.
func GenresMatch(a, b string) bool {
	return NormalizeGenre(a) == NormalizeGenre(b)
}
