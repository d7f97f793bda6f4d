// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/validation"
)

// Stage identifies which input file a failure came from.
type Stage string

const (
	// StageMovies is the movies file.
	StageMovies Stage = "movies"
	// StageUsers is the users file.
	StageUsers Stage = "users"
)

// Catalog is the fully validated content of both input files.
type Catalog struct {
	movies []models.Movie
	users  []*models.User
}

// New builds a catalog from already validated records.
func New(movies []models.Movie, users []*models.User) *Catalog {
	return &Catalog{movies: movies, users: users}
}

// Movies returns the accepted movies in file order.
func (c *Catalog) Movies() []models.Movie {
	return c.movies
}

// Users returns the accepted users in file order.
func (c *Catalog) Users() []*models.User {
	return c.users
}

// MovieByID returns the first movie with the given identifier.
func (c *Catalog) MovieByID(id string) (models.Movie, bool) {
	for _, m := range c.movies {
		if m.ID() == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

// Failure is the first validation error of a run. Its message is the whole
// content of the output file.
type Failure struct {
	Stage Stage
	Line  int
	Err   *validation.RuleError
}

// Message returns the user-visible error line.
func (f *Failure) Message() string {
	return f.Err.Error()
}

// Rule returns the validation rule that rejected the record.
func (f *Failure) Rule() validation.Rule {
	return f.Err.Rule
}

// Result is the outcome of loading: exactly one of Catalog and Failure is set.
type Result struct {
	catalog *Catalog
	failure *Failure
}

// Loaded wraps a successfully loaded catalog.
func Loaded(c *Catalog) *Result {
	return &Result{catalog: c}
}

// Failed wraps the first validation failure.
func Failed(f *Failure) *Result {
	return &Result{failure: f}
}

// OK reports whether every record was valid.
func (r *Result) OK() bool {
	return r.failure == nil
}

// Catalog returns the loaded catalog, or nil when loading failed.
func (r *Result) Catalog() *Catalog {
	return r.catalog
}

// Failure returns the validation failure, or nil when loading succeeded.
func (r *Result) Failure() *Failure {
	return r.failure
}
