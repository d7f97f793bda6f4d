// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule identifies which record rule rejected a value.
type Rule string

const (
	RuleMovieTitle     Rule = "movie_title"
	RuleMovieID        Rule = "movie_id"
	RuleMovieIDLetters Rule = "movie_id_letters"
	RuleMovieIDNumbers Rule = "movie_id_numbers"
	RuleMovieIDUnique  Rule = "movie_id_unique"
	RuleUserName       Rule = "user_name"
	RuleUserID         Rule = "user_id"
	RuleUserIDUnique   Rule = "user_id_unique"
)

const (
	movieIDNumbersLength = 3
	userIDLength         = 9
)

// RuleError is returned by the record validators. Its message is written
// verbatim to the output file, so the format must not change.
type RuleError struct {
	Rule    Rule
	Value   string
	message string
}

func (e *RuleError) Error() string {
	return e.message
}

func newRuleError(rule Rule, value, format string) *RuleError {
	return &RuleError{
		Rule:    rule,
		Value:   value,
		message: fmt.Sprintf(format, value),
	}
}

// ValidateMovieTitle checks that every space-separated word of title starts
// with an uppercase letter or a digit. Runs of spaces are allowed.
func ValidateMovieTitle(title string) error {
	if title == "" {
		return newRuleError(RuleMovieTitle, title, "ERROR: Movie Title %s is wrong")
	}

	for _, word := range strings.Split(title, " ") {
		if word == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			return newRuleError(RuleMovieTitle, title, "ERROR: Movie Title %s is wrong")
		}
	}

	return nil
}

// ValidateMovieID checks id against the title it belongs to and against the
// identifiers accepted so far. A valid id is the initials of the title's
// capitalized words followed by three digits, and its digits are not used by
// any other accepted id, whatever that id's letters are.
func ValidateMovieID(id, title string, existing *MovieIDs) error {
	if id == "" {
		return newRuleError(RuleMovieID, id, "ERROR: Movie Id %s is wrong")
	}

	if existing.Contains(id) {
		return newRuleError(RuleMovieIDUnique, id, "ERROR: Movie Id numbers %s aren't unique")
	}

	prefix := TitleInitials(title)
	if !strings.HasPrefix(id, prefix) {
		return newRuleError(RuleMovieIDLetters, id, "ERROR: Movie Id letters %s are wrong")
	}

	numbers := id[len(prefix):]
	if utf8.RuneCountInString(numbers) != movieIDNumbersLength || !allDigits(numbers) {
		return newRuleError(RuleMovieIDNumbers, id, "ERROR: Movie Id numbers %s are wrong")
	}

	for _, other := range existing.Values() {
		if other == id {
			continue
		}
		if suffix, ok := numericSuffix(other); ok && suffix == numbers {
			return newRuleError(RuleMovieIDUnique, id, "ERROR: Movie Id numbers %s aren't unique")
		}
	}

	return nil
}

// TitleInitials returns the first letter of every title word that starts with
// an uppercase letter. Words starting with anything else are skipped.
func TitleInitials(title string) string {
	var b strings.Builder
	for _, word := range strings.Split(title, " ") {
		if word == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) {
			b.WriteRune(first)
		}
	}
	return b.String()
}

// numericSuffix strips the leading run of non-digits from id.
// ok is false when nothing remains.
func numericSuffix(id string) (string, bool) {
	i := strings.IndexFunc(id, unicode.IsDigit)
	if i < 0 {
		return "", false
	}
	return id[i:], true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateUserName accepts names made of letters and spaces that do not
// start with a space.
func ValidateUserName(name string) error {
	if name == "" || strings.HasPrefix(name, " ") {
		return newRuleError(RuleUserName, name, "ERROR: User Name %s is wrong")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return newRuleError(RuleUserName, name, "ERROR: User Name %s is wrong")
		}
	}

	return nil
}

// ValidateUserID accepts 9 alphanumeric characters starting with a digit,
// with at most one letter which must be the last character. Format is
// checked before uniqueness.
func ValidateUserID(id string, existing *UserIDs) error {
	if !validUserIDFormat(id) {
		return newRuleError(RuleUserID, id, "ERROR: User Id %s is wrong")
	}

	if existing.Contains(id) {
		return newRuleError(RuleUserIDUnique, id, "ERROR: User Id %s isn't unique")
	}

	return nil
}

func validUserIDFormat(id string) bool {
	runes := []rune(id)
	if len(runes) != userIDLength {
		return false
	}

	if !unicode.IsDigit(runes[0]) {
		return false
	}

	letters := 0
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
		default:
			return false
		}
	}

	if letters > 1 {
		return false
	}
	return letters == 0 || unicode.IsLetter(runes[len(runes)-1])
}
