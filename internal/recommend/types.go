// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"strings"

	"github.com/tomtom215/moviematch/internal/models"
)

// NoRecommendations is the line written for a user with nothing to recommend.
const NoRecommendations = "No recommendations"

// Recommendation holds the titles recommended to one user.
type Recommendation struct {
	User *models.User

	// Titles are distinct and ordered by their position in the catalog.
	Titles []string
}

// Empty reports whether nothing was recommended.
func (r Recommendation) Empty() bool {
	return len(r.Titles) == 0
}

// Header returns the "Name,Id" line of the user.
func (r Recommendation) Header() string {
	return r.User.Name() + "," + r.User.ID()
}

// Line returns the comma-joined titles, or NoRecommendations.
func (r Recommendation) Line() string {
	if r.Empty() {
		return NoRecommendations
	}
	return strings.Join(r.Titles, ",")
}
