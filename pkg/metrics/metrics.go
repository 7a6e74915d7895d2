// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationDuration tracks end-to-end deck generation duration.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deck_generation_duration_seconds",
			Help:    "Deck generation duration in seconds",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"model", "status"},
	)

	// GenerationsTotal tracks generation attempts by outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_generations_total",
			Help: "Total deck generation attempts",
		},
		[]string{"model", "status"},
	)

	// GenerationsInFlight tracks generations currently awaiting the model.
	GenerationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deck_generations_in_flight",
			Help: "Number of generations currently in flight",
		},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"model", "direction"},
	)

	// SlidesGenerated tracks slides contained in successfully generated decks.
	SlidesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_slides_generated_total",
			Help: "Total slides contained in generated decks",
		},
	)

	// SlideEditsTotal tracks single-slide edits by outcome.
	SlideEditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_slide_edits_total",
			Help: "Total slide edit operations",
		},
		[]string{"outcome"},
	)

	// ExportsTotal tracks JSON exports served.
	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_exports_total",
			Help: "Total deck JSON exports",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records metrics for one generation attempt.
func RecordGeneration(model, status string, duration float64, tokensIn, tokensOut int) {
	GenerationDuration.WithLabelValues(model, status).Observe(duration)
	GenerationsTotal.WithLabelValues(model, status).Inc()
	LLMTokensTotal.WithLabelValues(model, "in").Add(float64(tokensIn))
	LLMTokensTotal.WithLabelValues(model, "out").Add(float64(tokensOut))
}
