// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package pipeline

import (
	"io"
	"os"
)

// lazyFile opens path on the first Read. A file that is never read is
// never opened, so a missing users file does not matter when loading stops
// at an invalid movie.
type lazyFile struct {
	path string
	f    *os.File
	err  error
}

func openLazy(path string) *lazyFile {
	return &lazyFile{path: path}
}

func (l *lazyFile) Read(p []byte) (int, error) {
	if l.f == nil && l.err == nil {
		l.f, l.err = os.Open(l.path)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Read(p)
}

// opened reports whether Read ever tried to open the file.
func (l *lazyFile) opened() bool {
	return l.f != nil || l.err != nil
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

var _ io.ReadCloser = (*lazyFile)(nil)
