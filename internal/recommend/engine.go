// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/models"
)

// ErrNilCatalog is returned when Recommend is called without a catalog.
var ErrNilCatalog = errors.New("recommend: nil catalog")

// Engine recommends movies that share a genre with movies a user liked.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

// NewEngine creates a new recommendation engine. A nil cfg selects the
// defaults and a nil recorder gets a private one.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, rec *metrics.Recorder) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if rec == nil {
		rec = metrics.New()
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		metrics: rec,
	}, nil
}

// Recommend produces one Recommendation per user, in catalog order.
func (e *Engine) Recommend(ctx context.Context, cat *catalog.Catalog) ([]Recommendation, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	users := cat.Users()
	out := make([]Recommendation, 0, len(users))

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := e.ForUser(user, cat)
		e.metrics.RecordRecommendations(len(rec.Titles))
		e.logger.Debug().
			Str("user_id", user.ID()).
			Int("liked", len(user.LikedMovieIDs())).
			Int("recommended", len(rec.Titles)).
			Msg("user recommendations computed")

		out = append(out, rec)
	}

	e.logger.Info().Int("users", len(out)).Msg("recommendations generated")
	return out, nil
}

// ForUser computes the recommendation of a single user against cat.
//
// The user's liked genres come from the first movie matching each liked id;
// unknown ids contribute nothing. Every movie the user did not like that has
// at least one liked genre is recommended once, by title.
func (e *Engine) ForUser(user *models.User, cat *catalog.Catalog) Recommendation {
	liked := e.likedGenres(user, cat)

	titles := make([]string, 0)
	if len(liked) == 0 {
		return Recommendation{User: user, Titles: titles}
	}

	seen := make(map[string]struct{})
	for _, m := range cat.Movies() {
		if user.Likes(m.ID()) {
			continue
		}
		if _, dup := seen[m.Title()]; dup {
			continue
		}
		if !e.sharesGenre(m, liked) {
			continue
		}
		seen[m.Title()] = struct{}{}
		titles = append(titles, m.Title())
	}

	return Recommendation{User: user, Titles: titles}
}

func (e *Engine) likedGenres(user *models.User, cat *catalog.Catalog) map[string]struct{} {
	liked := make(map[string]struct{})
	for _, id := range user.LikedMovieIDs() {
		m, ok := cat.MovieByID(id)
		if !ok {
			continue
		}
		for _, g := range m.Genres() {
			liked[e.config.genreKey(g)] = struct{}{}
		}
	}
	return liked
}

func (e *Engine) sharesGenre(m models.Movie, liked map[string]struct{}) bool {
	for _, g := range m.Genres() {
		if _, ok := liked[e.config.genreKey(g)]; ok {
			return true
		}
	}
	return false
}
