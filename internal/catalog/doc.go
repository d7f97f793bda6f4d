// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package catalog reads the movies and users files into a validated Catalog.

Both files are sequences of two-line records:

	The Matrix,TM123        <- header: Title,Id
	Action,Sci-Fi           <- genres

	John Doe,123456789      <- header: Name,Id
	TM123,I456              <- liked movie ids

Header lines that do not split into exactly two fields are skipped. Every
accepted header is checked with the rules in the validation package, and the
first rejected record ends the whole load: the Result then carries a Failure
whose message is the only line of the output file. The users file is not read
once a movie has been rejected.

A record whose second line is missing (end of file) ends the file quietly and
is not kept.

Usage:

	loader := catalog.NewLoader(logging.Logger(), rec)
	result, err := loader.Load(ctx, moviesFile, usersFile)
	if err != nil {
	    return err // read failure
	}
	if !result.OK() {
	    fmt.Println(result.Failure().Message())
	}
*/
package catalog
