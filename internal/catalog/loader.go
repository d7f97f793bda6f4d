// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/validation"
)

// ErrNilReader is returned when an input stream that must be read is nil.
var ErrNilReader = errors.New("catalog: nil reader")

// Loader turns record pairs into validated movies and users.
// A Loader keeps no state between calls; uniqueness is tracked per call.
type Loader struct {
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

// NewLoader creates a loader. A nil recorder gets a private one.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(logger zerolog.Logger, rec *metrics.Recorder) *Loader {
	if rec == nil {
		rec = metrics.New()
	}
	return &Loader{
		logger:  logger.With().Str("component", "catalog").Logger(),
		metrics: rec,
	}
}

// Load reads movies, then users, and stops at the first invalid record.
// The users reader is not touched when a movie is invalid, so it may be nil
// in that case. Read failures are returned as errors, never as a Failure.
func (l *Loader) Load(ctx context.Context, movies, users io.Reader) (*Result, error) {
	loadedMovies, failure, err := l.LoadMovies(ctx, movies)
	if err != nil {
		return nil, err
	}
	if failure != nil {
		return Failed(failure), nil
	}

	loadedUsers, failure, err := l.LoadUsers(ctx, users)
	if err != nil {
		return nil, err
	}
	if failure != nil {
		return Failed(failure), nil
	}

	l.logger.Info().
		Int("movies", len(loadedMovies)).
		Int("users", len(loadedUsers)).
		Msg("catalog loaded")

	return Loaded(New(loadedMovies, loadedUsers)), nil
}

// LoadMovies reads "Title,Id" / "Genre1,Genre2,..." pairs.
func (l *Loader) LoadMovies(ctx context.Context, r io.Reader) ([]models.Movie, *Failure, error) {
	if r == nil {
		return nil, nil, fmt.Errorf("movies: %w", ErrNilReader)
	}

	lines := newLineReader(r)
	accepted := validation.NewMovieIDs()
	movies := make([]models.Movie, 0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		header, ok := lines.next()
		if !ok {
			break
		}

		fields := splitFields(header)
		if len(fields) != 2 {
			l.metrics.RecordSkipped(metrics.KindMovie)
			l.logger.Debug().Int("line", lines.number).Msg("skipping movie line with wrong field count")
			continue
		}

		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])

		if err := validation.ValidateMovieTitle(title); err != nil {
			return nil, l.fail(StageMovies, lines.number, err), nil
		}
		if err := validation.ValidateMovieID(id, title, accepted); err != nil {
			return nil, l.fail(StageMovies, lines.number, err), nil
		}
		accepted.Add(id)

		genreLine, ok := lines.next()
		if !ok {
			l.logger.Debug().Str("movie_id", id).Msg("movie without genre line at end of file")
			break
		}

		movies = append(movies, models.NewMovie(title, id, splitTrimmed(genreLine)))
		l.metrics.RecordLoaded(metrics.KindMovie)
		l.logger.Debug().Str("movie_id", id).Str("title", title).Msg("movie accepted")
	}

	if err := lines.err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read movies: %w", err)
	}

	return movies, nil, nil
}

// LoadUsers reads "Name,Id" / "LikedId1,LikedId2,..." pairs.
// Names are kept untrimmed so a leading space reaches the name rule.
func (l *Loader) LoadUsers(ctx context.Context, r io.Reader) ([]*models.User, *Failure, error) {
	if r == nil {
		return nil, nil, fmt.Errorf("users: %w", ErrNilReader)
	}

	lines := newLineReader(r)
	accepted := validation.NewUserIDs()
	users := make([]*models.User, 0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		header, ok := lines.next()
		if !ok {
			break
		}

		fields := splitFields(header)
		if len(fields) != 2 {
			l.metrics.RecordSkipped(metrics.KindUser)
			l.logger.Debug().Int("line", lines.number).Msg("skipping user line with wrong field count")
			continue
		}

		name := fields[0]
		id := strings.TrimSpace(fields[1])

		if err := validation.ValidateUserName(name); err != nil {
			return nil, l.fail(StageUsers, lines.number, err), nil
		}
		if err := validation.ValidateUserID(id, accepted); err != nil {
			return nil, l.fail(StageUsers, lines.number, err), nil
		}
		accepted.Add(id)

		likedLine, ok := lines.next()
		if !ok {
			l.logger.Debug().Str("user_id", id).Msg("user without liked movies line at end of file")
			break
		}

		user := models.NewUser(name, id)
		for _, movieID := range splitTrimmed(likedLine) {
			user.AddLikedMovieID(movieID)
		}

		users = append(users, user)
		l.metrics.RecordLoaded(metrics.KindUser)
		l.logger.Debug().Str("user_id", id).Int("liked", len(user.LikedMovieIDs())).Msg("user accepted")
	}

	if err := lines.err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil, nil
}

// fail converts a rule violation into the run's Failure.
func (l *Loader) fail(stage Stage, line int, err error) *Failure {
	var ruleErr *validation.RuleError
	if !errors.As(err, &ruleErr) {
		ruleErr = &validation.RuleError{Rule: "unknown"}
	}

	l.metrics.RecordValidationFailure(string(ruleErr.Rule))
	l.logger.Warn().
		Str("stage", string(stage)).
		Int("line", line).
		Str("rule", string(ruleErr.Rule)).
		Str("value", ruleErr.Value).
		Msg("record rejected, loading stopped")

	return &Failure{Stage: stage, Line: line, Err: ruleErr}
}

// lineReader yields lines without their terminators and counts them.
// A line ends at "\n", "\r" or "\r\n"; a final line without terminator
// is still returned. Lines have no length limit.
type lineReader struct {
	r       *bufio.Reader
	number  int
	readErr error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next() (string, bool) {
	if lr.readErr != nil {
		return "", false
	}

	var line []byte
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.readErr = err
				return "", false
			}
			if len(line) == 0 {
				return "", false
			}
			break
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			if peek, err := lr.r.Peek(1); err == nil && peek[0] == '\n' {
				_, _ = lr.r.ReadByte()
			}
			break
		}
		line = append(line, b)
	}

	lr.number++
	return string(line), true
}

func (lr *lineReader) err() error {
	return lr.readErr
}

// splitFields splits a line on commas and drops trailing empty fields.
// A line without any comma is returned as a single field, even when empty,
// so "" is one field while "," has none.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	if len(parts) == 1 {
		return parts
	}

	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

// splitTrimmed splits a list line and trims every entry.
func splitTrimmed(line string) []string {
	fields := splitFields(line)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
