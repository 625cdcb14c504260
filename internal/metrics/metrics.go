// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP surface
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glpcompass_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glpcompass_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glpcompass_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	HTTPRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glpcompass_http_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation pipeline
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glpcompass_recommendation_duration_seconds",
			Help:    "End-to-end recommendation computation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glpcompass_recommendations_served_total",
			Help: "Total number of recommendation sets served",
		},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glpcompass_recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"reason"}, // "no_corpus", "invalid_profile", "internal"
	)

	// Corpus
	CorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glpcompass_corpus_records",
			Help: "Experience records in the current corpus snapshot",
		},
	)

	CorpusRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glpcompass_corpus_refreshes_total",
			Help: "Corpus snapshot refresh attempts by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	// Response cache
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glpcompass_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glpcompass_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	// Ingestion
	IngestedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glpcompass_ingested_records_total",
			Help: "Total number of experience records ingested",
		},
	)

	IngestRejectedDocuments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glpcompass_ingest_rejected_documents_total",
			Help: "Total number of export documents rejected by validation",
		},
	)

	JournalPendingEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glpcompass_journal_pending_entries",
			Help: "Unconfirmed batches in the ingest journal",
		},
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glpcompass_events_published_total",
			Help: "Corpus events published by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)
)

// RecordHTTPRequest observes one completed HTTP request.
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordRecommendation observes one recommendation computation.
func RecordRecommendation(duration time.Duration) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationsServed.Inc()
}

// RecordRecommendationError counts a failed recommendation request.
func RecordRecommendationError(reason string) {
	RecommendationErrors.WithLabelValues(reason).Inc()
}

// RecordCorpusRefresh counts a snapshot refresh and, on success, updates
// the corpus size gauge.
func RecordCorpusRefresh(records int, err error) {
	if err != nil {
		CorpusRefreshes.WithLabelValues("failure").Inc()
		return
	}
	CorpusRefreshes.WithLabelValues("success").Inc()
	CorpusSize.Set(float64(records))
}

// RecordIngest counts one committed ingest batch.
func RecordIngest(inserted, rejected int) {
	IngestedRecords.Add(float64(inserted))
	IngestRejectedDocuments.Add(float64(rejected))
}

// RecordEventPublish counts a corpus event publish attempt.
func RecordEventPublish(err error) {
	if err != nil {
		EventsPublished.WithLabelValues("failure").Inc()
		return
	}
	EventsPublished.WithLabelValues("success").Inc()
}
