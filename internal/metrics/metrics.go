// Package metrics defines the Prometheus collectors for the classifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification metrics
var (
	// ClassificationsTotal tracks classifications by resolution method and label.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifications_total",
			Help: "Total classifications by method and emotion label",
		},
		[]string{"method", "label"},
	)

	// ClassificationDuration tracks end-to-end classification latency in seconds.
	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classification_duration_seconds",
			Help:    "End-to-end classification duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// FrameMatchesPerRequest tracks how many frame matches a request produced.
	FrameMatchesPerRequest = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "frame_matches_per_request",
			Help:    "Number of frame matches produced per classification request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)
)

// Embedding fallback metrics
var (
	// FallbackRequestsTotal tracks embedding fallback invocations by status.
	FallbackRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_requests_total",
			Help: "Total embedding fallback invocations by status",
		},
		[]string{"status"},
	)

	// FallbackDuration tracks embedding fallback latency in seconds.
	FallbackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fallback_duration_seconds",
			Help:    "Embedding fallback call duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// EncoderCacheHits tracks encoder vector cache hits.
	EncoderCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "encoder_cache_hits_total",
			Help: "Total encoder vector cache hits",
		},
	)

	// EncoderCacheMisses tracks encoder vector cache misses.
	EncoderCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "encoder_cache_misses_total",
			Help: "Total encoder vector cache misses",
		},
	)

	// BreakerStateChanges tracks encoder circuit breaker state transitions.
	BreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encoder_breaker_state_changes_total",
			Help: "Encoder circuit breaker state transitions by new state",
		},
		[]string{"state"},
	)
)

// Knowledge base gauges, set once after startup load.
var (
	// KnowledgeFrames reports the number of loaded emotion frames.
	KnowledgeFrames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "knowledge_frames",
			Help: "Number of loaded emotion frames",
		},
	)

	// KnowledgeTriggers reports the number of loaded lexical triggers.
	KnowledgeTriggers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "knowledge_triggers",
			Help: "Number of loaded lexical triggers",
		},
	)

	// KnowledgeRoleMarkers reports the number of loaded role markers.
	KnowledgeRoleMarkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "knowledge_role_markers",
			Help: "Number of loaded role markers",
		},
	)
)
