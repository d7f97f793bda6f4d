// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// Report is the machine-readable summary of one run.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Status is "ok" or "validation_failed".
	Status string `json:"status"`

	Inputs          ReportInputs      `json:"inputs"`
	Error           *ReportError      `json:"error,omitempty"`
	Counts          ReportCounts      `json:"counts"`
	Recommendations []ReportUserEntry `json:"recommendations"`

	// Metrics holds the loader, validation and recommendation counters of
	// the run, keyed like `moviematch_lines_skipped_total{kind="user"}`.
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// ReportInputs names the files a run read.
type ReportInputs struct {
	MoviesPath string `json:"movies_path,omitempty"`
	UsersPath  string `json:"users_path,omitempty"`
}

// ReportError describes the record that stopped loading.
type ReportError struct {
	Message string `json:"message"`
	Stage   string `json:"stage"`
	Line    int    `json:"line"`
	Rule    string `json:"rule"`
}

// ReportCounts summarizes the catalog and the recommendations.
type ReportCounts struct {
	Movies                      int `json:"movies"`
	Users                       int `json:"users"`
	RecommendedTitles           int `json:"recommended_titles"`
	UsersWithoutRecommendations int `json:"users_without_recommendations"`
}

// ReportUserEntry is the recommendation of one user.
type ReportUserEntry struct {
	Name   string   `json:"name"`
	ID     string   `json:"id"`
	Titles []string `json:"titles"`
}

// NewReport builds the report of a finished run.
func NewReport(runID uuid.UUID, started, finished time.Time, inputs ReportInputs,
	result *catalog.Result, recs []recommend.Recommendation) (*Report, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	report := &Report{
		RunID:           runID.String(),
		StartedAt:       started.UTC(),
		FinishedAt:      finished.UTC(),
		Inputs:          inputs,
		Recommendations: make([]ReportUserEntry, 0, len(recs)),
	}

	if !result.OK() {
		f := result.Failure()
		report.Status = metrics.StatusValidationFailed
		report.Error = &ReportError{
			Message: f.Message(),
			Stage:   string(f.Stage),
			Line:    f.Line,
			Rule:    string(f.Rule()),
		}
		return report, nil
	}

	report.Status = metrics.StatusOK
	report.Counts.Movies = len(result.Catalog().Movies())
	report.Counts.Users = len(result.Catalog().Users())

	for _, r := range recs {
		titles := make([]string, len(r.Titles))
		copy(titles, r.Titles)

		report.Counts.RecommendedTitles += len(titles)
		if r.Empty() {
			report.Counts.UsersWithoutRecommendations++
		}

		report.Recommendations = append(report.Recommendations, ReportUserEntry{
			Name:   r.User.Name(),
			ID:     r.User.ID(),
			Titles: titles,
		})
	}

	return report, nil
}

// WriteReport encodes report as indented JSON.
func WriteReport(w io.Writer, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}

// WriteReportFile writes report to path.
//
//nolint:gosec // G304: path comes from configuration
func WriteReportFile(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	return closeOrRemove(f, path, WriteReport(f, report))
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(r io.Reader) (*Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode run report: %w", err)
	}
	return &report, nil
}
