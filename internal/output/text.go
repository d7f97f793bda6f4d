// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// ErrNilResult is returned when there is nothing to write.
var ErrNilResult = errors.New("output: nil result")

// WriteText writes the recommendations file format to w.
//
// A failed result produces the single error line. Otherwise every
// recommendation produces a "Name,Id" line followed by the titles line.
// Every line ends with "\n".
func WriteText(w io.Writer, result *catalog.Result, recs []recommend.Recommendation) error {
	if result == nil {
		return ErrNilResult
	}

	bw := bufio.NewWriter(w)

	if !result.OK() {
		if _, err := fmt.Fprintln(bw, result.Failure().Message()); err != nil {
			return err
		}
		return bw.Flush()
	}

	for _, r := range recs {
		if _, err := fmt.Fprintln(bw, r.Header()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, r.Line()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteTextFile writes the recommendations file to path, replacing any
// previous content. A partially written file is removed.
//
//nolint:gosec // G304: path comes from configuration
func WriteTextFile(path string, result *catalog.Result, recs []recommend.Recommendation) error {
	if result == nil {
		return ErrNilResult
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	return closeOrRemove(f, path, WriteText(f, result, recs))
}

// closeOrRemove closes f and removes it when writeErr or the close failed.
func closeOrRemove(f *os.File, path string, writeErr error) error {
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path) //nolint:errcheck // Best effort cleanup on error
		return fmt.Errorf("failed to write %s: %w", path, writeErr)
	}

	if closeErr != nil {
		os.Remove(path) //nolint:errcheck // Best effort cleanup on error
		return fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	return nil
}
