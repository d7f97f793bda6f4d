// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/validation"
)

const (
	sampleMovies = "The Matrix,TM123\nAction,Sci-Fi\nInception,I456\nSci-Fi,Thriller\n"
	sampleUsers  = "John Doe,123456789\nTM123\nJane Smith,987654321\nI456\n"
)

func newTestLoader() (*Loader, *metrics.Recorder) {
	rec := metrics.New()
	return NewLoader(zerolog.Nop(), rec), rec
}

// errReader fails every read.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSplitFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a,b", []string{"a", "b"}},
		{"a,b,", []string{"a", "b"}},
		{"a,,", []string{"a"}},
		{",", []string{}},
		{",,", []string{}},
		{",b", []string{"", "b"}},
		{"a,,b", []string{"a", "", "b"}},
		{" a , b ", []string{" a ", " b "}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			if got := splitFields(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitFields(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitTrimmed(t *testing.T) {
	t.Parallel()

	got := splitTrimmed(" Action , Sci-Fi ,  ")
	want := []string{"Action", "Sci-Fi", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitTrimmed() = %q, want %q", got, want)
	}
}

func TestLoader_Load_Success(t *testing.T) {
	t.Parallel()

	loader, rec := newTestLoader()
	result, err := loader.Load(context.Background(), strings.NewReader(sampleMovies), strings.NewReader(sampleUsers))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.OK() {
		t.Fatalf("Load() failed: %s", result.Failure().Message())
	}

	cat := result.Catalog()
	if len(cat.Movies()) != 2 || len(cat.Users()) != 2 {
		t.Fatalf("got %d movies, %d users, want 2 and 2", len(cat.Movies()), len(cat.Users()))
	}

	matrix := cat.Movies()[0]
	if matrix.Title() != "The Matrix" || matrix.ID() != "TM123" {
		t.Errorf("first movie = %q/%q", matrix.Title(), matrix.ID())
	}
	if !reflect.DeepEqual(matrix.Genres(), []string{"Action", "Sci-Fi"}) {
		t.Errorf("genres = %q", matrix.Genres())
	}

	jane := cat.Users()[1]
	if jane.Name() != "Jane Smith" || jane.ID() != "987654321" {
		t.Errorf("second user = %q/%q", jane.Name(), jane.ID())
	}
	if !reflect.DeepEqual(jane.LikedMovieIDs(), []string{"I456"}) {
		t.Errorf("liked = %q", jane.LikedMovieIDs())
	}

	if got := testutil.ToFloat64(rec.RecordsLoaded.WithLabelValues(metrics.KindMovie)); got != 2 {
		t.Errorf("movies loaded metric = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.RecordsLoaded.WithLabelValues(metrics.KindUser)); got != 2 {
		t.Errorf("users loaded metric = %v, want 2", got)
	}
}

func TestLoader_Load_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		movies    string
		users     string
		wantMsg   string
		wantStage Stage
		wantLine  int
		wantRule  validation.Rule
	}{
		{
			name:      "lowercase title",
			movies:    "the matrix,TM123\nAction\n",
			users:     sampleUsers,
			wantMsg:   "ERROR: Movie Title the matrix is wrong",
			wantStage: StageMovies,
			wantLine:  1,
			wantRule:  validation.RuleMovieTitle,
		},
		{
			name:      "wrong id letters",
			movies:    "The Matrix,XY123\nAction\n",
			users:     sampleUsers,
			wantMsg:   "ERROR: Movie Id letters XY123 are wrong",
			wantStage: StageMovies,
			wantLine:  1,
			wantRule:  validation.RuleMovieIDLetters,
		},
		{
			name:      "duplicate movie id",
			movies:    "The Matrix,TM123\nAction\nThe Matrix,TM123\nAction\n",
			users:     sampleUsers,
			wantMsg:   "ERROR: Movie Id numbers TM123 aren't unique",
			wantStage: StageMovies,
			wantLine:  3,
			wantRule:  validation.RuleMovieIDUnique,
		},
		{
			name:      "digits reused by another movie",
			movies:    "The Matrix,TM123\nAction\nInception,I123\nThriller\n",
			users:     sampleUsers,
			wantMsg:   "ERROR: Movie Id numbers I123 aren't unique",
			wantStage: StageMovies,
			wantLine:  3,
			wantRule:  validation.RuleMovieIDUnique,
		},
		{
			name:      "user name with digit",
			movies:    sampleMovies,
			users:     "John2,123456789\nTM123\n",
			wantMsg:   "ERROR: User Name John2 is wrong",
			wantStage: StageUsers,
			wantLine:  1,
			wantRule:  validation.RuleUserName,
		},
		{
			name:      "user name leading space is not trimmed",
			movies:    sampleMovies,
			users:     " John,123456789\nTM123\n",
			wantMsg:   "ERROR: User Name  John is wrong",
			wantStage: StageUsers,
			wantLine:  1,
			wantRule:  validation.RuleUserName,
		},
		{
			name:      "short user id",
			movies:    sampleMovies,
			users:     "John Doe,12345\nTM123\n",
			wantMsg:   "ERROR: User Id 12345 is wrong",
			wantStage: StageUsers,
			wantLine:  1,
			wantRule:  validation.RuleUserID,
		},
		{
			name:      "duplicate user id",
			movies:    sampleMovies,
			users:     "John Doe,123456789\nTM123\nJane Smith,123456789\nI456\n",
			wantMsg:   "ERROR: User Id 123456789 isn't unique",
			wantStage: StageUsers,
			wantLine:  3,
			wantRule:  validation.RuleUserIDUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, rec := newTestLoader()
			result, err := loader.Load(context.Background(), strings.NewReader(tt.movies), strings.NewReader(tt.users))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if result.OK() {
				t.Fatal("Load() succeeded, want failure")
			}
			if result.Catalog() != nil {
				t.Error("failed result should not carry a catalog")
			}

			f := result.Failure()
			if f.Message() != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", f.Message(), tt.wantMsg)
			}
			if f.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", f.Stage, tt.wantStage)
			}
			if f.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", f.Line, tt.wantLine)
			}
			if f.Rule() != tt.wantRule {
				t.Errorf("Rule() = %q, want %q", f.Rule(), tt.wantRule)
			}
			if got := testutil.ToFloat64(rec.ValidationFailures.WithLabelValues(string(tt.wantRule))); got != 1 {
				t.Errorf("validation failure metric = %v, want 1", got)
			}
		})
	}
}

func TestLoader_Load_MovieFailureSkipsUsers(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	// A nil users reader would be an error if it were read.
	result, err := loader.Load(context.Background(), strings.NewReader("the matrix,TM123\nAction\n"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.OK() || result.Failure().Stage != StageMovies {
		t.Fatalf("want movies failure, got %+v", result.Failure())
	}
}

func TestLoader_Load_FirstFailureWins(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	movies := "The Matrix,TM123\nAction\nbad title,BT111\nDrama\nalso bad,AB222\nDrama\n"
	result, err := loader.Load(context.Background(), strings.NewReader(movies), strings.NewReader("x,1\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := result.Failure().Message(); got != "ERROR: Movie Title bad title is wrong" {
		t.Errorf("Message() = %q", got)
	}
}

func TestLoader_LoadMovies_SkipsMalformedHeaders(t *testing.T) {
	t.Parallel()

	loader, rec := newTestLoader()
	input := "just a title\nThe Matrix,TM123\nAction\n"
	movies, failure, err := loader.LoadMovies(context.Background(), strings.NewReader(input))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	if len(movies) != 1 || movies[0].ID() != "TM123" {
		t.Fatalf("movies = %+v", movies)
	}
	if got := testutil.ToFloat64(rec.LinesSkipped.WithLabelValues(metrics.KindMovie)); got != 1 {
		t.Errorf("skipped metric = %v, want 1", got)
	}
}

func TestLoader_LoadMovies_TrailingCommaHeader(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	movies, failure, err := loader.LoadMovies(context.Background(), strings.NewReader("The Matrix,TM123,\nAction\n"))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	if len(movies) != 1 {
		t.Errorf("got %d movies, want 1", len(movies))
	}
}

func TestLoader_LoadMovies_MissingGenreLine(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	movies, failure, err := loader.LoadMovies(context.Background(), strings.NewReader("The Matrix,TM123\nAction\nInception,I456"))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	if len(movies) != 1 || movies[0].ID() != "TM123" {
		t.Errorf("movies = %+v, want only The Matrix", movies)
	}
}

func TestLoader_LoadMovies_TrimsFields(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	movies, failure, err := loader.LoadMovies(context.Background(), strings.NewReader("  The Matrix , TM123 \n Action , Sci-Fi \n"))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	m := movies[0]
	if m.Title() != "The Matrix" || m.ID() != "TM123" {
		t.Errorf("movie = %q/%q", m.Title(), m.ID())
	}
	if !reflect.DeepEqual(m.Genres(), []string{"Action", "Sci-Fi"}) {
		t.Errorf("genres = %q", m.Genres())
	}
}

func TestLoader_LoadUsers_CRLF(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	users, failure, err := loader.LoadUsers(context.Background(), strings.NewReader("John Doe,123456789\r\nTM123, I456\r\n"))
	if err != nil || failure != nil {
		t.Fatalf("LoadUsers() = %v, %v", failure, err)
	}
	if !reflect.DeepEqual(users[0].LikedMovieIDs(), []string{"TM123", "I456"}) {
		t.Errorf("liked = %q", users[0].LikedMovieIDs())
	}
}

func TestLoader_LoadMovies_BareCarriageReturn(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	movies, failure, err := loader.LoadMovies(context.Background(),
		strings.NewReader("The Matrix,TM123\rAction,Sci-Fi\rInception,I456\rSci-Fi\r"))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	if len(movies) != 2 {
		t.Fatalf("len(movies) = %d, want 2", len(movies))
	}
	if movies[1].ID() != "I456" || !reflect.DeepEqual(movies[1].Genres(), []string{"Sci-Fi"}) {
		t.Errorf("second movie = %q %q", movies[1].ID(), movies[1].Genres())
	}
}

func TestLoader_LoadMovies_LongLine(t *testing.T) {
	t.Parallel()

	title := "A" + strings.Repeat("a", 2<<20)
	loader, _ := newTestLoader()
	movies, failure, err := loader.LoadMovies(context.Background(),
		strings.NewReader(title+",A123\nDrama\n"))
	if err != nil || failure != nil {
		t.Fatalf("LoadMovies() = %v, %v", failure, err)
	}
	if len(movies) != 1 || movies[0].Title() != title {
		t.Errorf("expected one movie with the full %d-byte title", len(title))
	}
}

func TestLineReader_Terminators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb\r", []string{"a", "b"}},
		{"mixed", "a\rb\r\nc\nd", []string{"a", "b", "c", "d"}},
		{"blank lines", "a\n\r\n\rb", []string{"a", "", "", "b"}},
		{"no trailing terminator", "a", []string{"a"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := newLineReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, ok := lines.next()
				if !ok {
					break
				}
				got = append(got, line)
			}
			if lines.err() != nil {
				t.Fatalf("err() = %v", lines.err())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if lines.number != len(tt.want) {
				t.Errorf("number = %d, want %d", lines.number, len(tt.want))
			}
		})
	}
}

func TestLoader_LoadUsers_EmptyInput(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	users, failure, err := loader.LoadUsers(context.Background(), strings.NewReader(""))
	if err != nil || failure != nil {
		t.Fatalf("LoadUsers() = %v, %v", failure, err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("users = %v, want empty non-nil slice", users)
	}
}

func TestLoader_NilReader(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	if _, err := loader.Load(context.Background(), nil, strings.NewReader("")); !errors.Is(err, ErrNilReader) {
		t.Errorf("nil movies: error = %v, want ErrNilReader", err)
	}
	if _, err := loader.Load(context.Background(), strings.NewReader(sampleMovies), nil); !errors.Is(err, ErrNilReader) {
		t.Errorf("nil users: error = %v, want ErrNilReader", err)
	}
}

func TestLoader_ReadError(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	_, err := loader.Load(context.Background(), errReader{}, strings.NewReader(""))
	if err == nil {
		t.Fatal("Load() error = nil, want read error")
	}
	if !strings.Contains(err.Error(), "failed to read movies") {
		t.Errorf("error = %v, want wrapped movies read error", err)
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader, _ := newTestLoader()
	_, err := loader.Load(ctx, strings.NewReader(sampleMovies), strings.NewReader(sampleUsers))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCatalog_MovieByID(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	result, err := loader.Load(context.Background(), strings.NewReader(sampleMovies), strings.NewReader(sampleUsers))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m, ok := result.Catalog().MovieByID("I456")
	if !ok || m.Title() != "Inception" {
		t.Errorf("MovieByID(I456) = %q, %v", m.Title(), ok)
	}
	if _, ok := result.Catalog().MovieByID("NOPE"); ok {
		t.Error("MovieByID(NOPE) found a movie")
	}
}
