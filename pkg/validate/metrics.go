package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aro_validation_duration_seconds",
			Help:    "Duration of a full argument validation pass in seconds",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 15, 60},
		},
	)

	ruleFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aro_validation_rule_failure_total",
			Help: "Total number of validation rule failures",
		},
		[]string{"rule"},
	)
)
