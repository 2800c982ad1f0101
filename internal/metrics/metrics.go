// Package metrics provides the centralized Prometheus registry for the
// confidence model.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ConfidenceCalculationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "confidence_calculations_total",
		Help:      "Total number of confidence calculations performed",
	})
	NeutralFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "neutral_fallbacks_total",
		Help:      "Total number of calculations that fell back to neutral confidence",
	})
	RatingUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "rating_updates_total",
		Help:      "Total number of post-game rating updates applied",
	})
	RatingPersistFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "rating_persist_failures_total",
		Help:      "Total number of rating writes that failed and were swallowed",
	})
	ResultsProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "results_processed_total",
		Help:      "Total number of final scores applied to ratings",
	})
	FeedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "feed_requests_total",
		Help:      "Total feed requests by feed name and outcome",
	}, []string{"feed", "outcome"})
)

// Gauge and histogram metrics
var (
	RecommendedPicks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pool_model",
		Name:      "recommended_picks_total",
		Help:      "Recommended picks by side",
	}, []string{"side"})
	ConfidenceScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pool_model",
		Name:      "confidence_score",
		Help:      "Distribution of emitted confidence scores",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})
	CalculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pool_model",
		Name:      "calculation_duration_seconds",
		Help:      "Time spent computing one game's confidence",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)

// Registry returns the shared registry, registering all collectors once
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			ConfidenceCalculationsTotal,
			NeutralFallbacksTotal,
			RatingUpdatesTotal,
			RatingPersistFailuresTotal,
			ResultsProcessedTotal,
			FeedRequestsTotal,
			RecommendedPicks,
			ConfidenceScore,
			CalculationDuration,
		)
	})
	return registry
}

// Handler returns an HTTP handler serving the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}
