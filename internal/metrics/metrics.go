// Moviematch - Genre-Overlap Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Record kinds used as the "kind" label.
const (
	KindMovie = "movie"
	KindUser  = "user"
)

// Run statuses used as the "status" label.
const (
	StatusOK               = "ok"
	StatusValidationFailed = "validation_failed"
	StatusIOError          = "io_error"
)

// Recorder holds the collectors of one pipeline run on its own registry,
// so repeated runs in the same process (and tests) never share counters.
type Recorder struct {
	registry *prometheus.Registry

	// Loader Metrics
	RecordsLoaded *prometheus.CounterVec
	LinesSkipped  *prometheus.CounterVec

	// Validation Metrics
	ValidationFailures *prometheus.CounterVec

	// Recommendation Metrics
	RecommendationsEmitted      prometheus.Counter
	UsersWithoutRecommendations prometheus.Counter
	RecommendationsPerUser      prometheus.Histogram

	// Run Metrics
	RunDuration    prometheus.Gauge
	RunsCompleted  *prometheus.CounterVec
	LastRunSuccess prometheus.Gauge
}

// New creates a Recorder with every collector registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		RecordsLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviematch_records_loaded_total",
				Help: "Total number of records accepted by the loader",
			},
			[]string{"kind"}, // "movie", "user"
		),

		LinesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviematch_lines_skipped_total",
				Help: "Total number of header lines skipped because of a wrong field count",
			},
			[]string{"kind"},
		),

		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviematch_validation_failures_total",
				Help: "Total number of records rejected by a validation rule",
			},
			[]string{"rule"},
		),

		RecommendationsEmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "moviematch_recommendations_emitted_total",
				Help: "Total number of recommended titles written",
			},
		),

		UsersWithoutRecommendations: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "moviematch_users_without_recommendations_total",
				Help: "Total number of users that received no recommendation",
			},
		),

		RecommendationsPerUser: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "moviematch_recommendations_per_user",
				Help:    "Number of recommended titles per user",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),

		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "moviematch_run_duration_seconds",
				Help: "Wall-clock duration of the last pipeline run",
			},
		),

		RunsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviematch_runs_completed_total",
				Help: "Total number of pipeline runs by final status",
			},
			[]string{"status"}, // "ok", "validation_failed", "io_error"
		),

		LastRunSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "moviematch_last_run_success_timestamp",
				Help: "Unix timestamp of the last run that wrote an output file",
			},
		),
	}
}

// RecordLoaded records one accepted record.
func (r *Recorder) RecordLoaded(kind string) {
	r.RecordsLoaded.WithLabelValues(kind).Inc()
}

// RecordSkipped records one skipped header line.
func (r *Recorder) RecordSkipped(kind string) {
	r.LinesSkipped.WithLabelValues(kind).Inc()
}

// RecordValidationFailure records a rejected record by rule name.
func (r *Recorder) RecordValidationFailure(rule string) {
	r.ValidationFailures.WithLabelValues(rule).Inc()
}

// RecordRecommendations records the titles recommended to one user.
func (r *Recorder) RecordRecommendations(count int) {
	r.RecommendationsPerUser.Observe(float64(count))
	if count == 0 {
		r.UsersWithoutRecommendations.Inc()
		return
	}
	r.RecommendationsEmitted.Add(float64(count))
}

// RecordRun records the outcome of a pipeline run.
func (r *Recorder) RecordRun(duration time.Duration, status string) {
	r.RunDuration.Set(duration.Seconds())
	r.RunsCompleted.WithLabelValues(status).Inc()
	if status != StatusIOError {
		r.LastRunSuccess.Set(float64(time.Now().Unix()))
	}
}

// WriteTextfile writes every collector in Prometheus text format to path,
// for pickup by the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Snapshot gathers counter and gauge values keyed by metric name plus
// labels, e.g. `moviematch_records_loaded_total{kind="movie"}`.
// Histograms are reported by their sample count.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName() + labelString(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			default:
				// Summaries and untyped metrics are not registered by this package.
			}
		}
	}
	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	s := "{"
	for i, p := range pairs {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return s + "}"
}
