package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Estimator metrics, exposed on /metrics.
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roi_calculations_total",
			Help: "Total number of ROI calculations",
		},
		[]string{"scenario", "mode", "outcome"}, // outcome: payback/no_payback/invalid
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roi_validation_failures_total",
			Help: "Total number of rejected input fields",
		},
		[]string{"field"},
	)

	AdvisoriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roi_advisories_total",
			Help: "Total number of non-blocking input advisories",
		},
		[]string{"field"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roi_calculation_duration_seconds",
			Help:    "Validation plus calculation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
		},
		[]string{"mode"},
	)

	EstimatesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_estimates_saved_total",
			Help: "Total number of saved estimates",
		},
	)
)
