// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package recommend implements genre-overlap recommendations.
//
// # Algorithm
//
// For every user of a validated catalog:
//
//  1. Collect the genres of the movies the user liked. Each liked id is
//     resolved to the first movie carrying it; ids that match no movie are
//     ignored.
//  2. Recommend every other movie that has at least one of those genres.
//     Movies the user liked are never recommended back, and a title is
//     listed once even if several movies share it.
//
// Titles keep the order in which they appear in the catalog, so the same
// input always produces the same output.
//
// # Genre Matching
//
// By default genres are compared after trimming and lower-casing
// ("sci-fi" matches " Sci-Fi"). GenreMatchExact restores byte-for-byte
// comparison.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger, rec)
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend(ctx, result.Catalog())
//	for _, r := range recs {
//	    fmt.Println(r.Header())
//	    fmt.Println(r.Line())
//	}
package recommend
