// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/moviematch/internal/models"
)

// GenreMatch selects how genres of two movies are compared.
type GenreMatch string

const (
	// GenreMatchNormalized compares genres case-insensitively after trimming.
	GenreMatchNormalized GenreMatch = "normalized"

	// GenreMatchExact compares genres byte for byte.
	GenreMatchExact GenreMatch = "exact"
)

// ParseGenreMatch converts a configuration value into a GenreMatch.
// The empty string selects the default.
func ParseGenreMatch(s string) (GenreMatch, error) {
	switch GenreMatch(strings.ToLower(strings.TrimSpace(s))) {
	case "", GenreMatchNormalized:
		return GenreMatchNormalized, nil
	case GenreMatchExact:
		return GenreMatchExact, nil
	default:
		return "", fmt.Errorf("unknown genre match mode %q (valid: normalized, exact)", s)
	}
}

// Config contains the configuration for the recommendation engine.
type Config struct {
	// GenreMatch controls genre comparison. Defaults to normalized.
	GenreMatch GenreMatch `json:"genre_match"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		GenreMatch: GenreMatchNormalized,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.GenreMatch {
	case GenreMatchNormalized, GenreMatchExact:
		return nil
	default:
		return fmt.Errorf("genre_match must be %q or %q, got %q",
			GenreMatchNormalized, GenreMatchExact, c.GenreMatch)
	}
}

// genreKey maps a genre to the key it is compared by.
func (c *Config) genreKey(genre string) string {
	if c.GenreMatch == GenreMatchExact {
		return genre
	}
	return models.NormalizeGenre(genre)
}
