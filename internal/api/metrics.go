package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoreComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airscore_score_computations_total",
		Help: "Mission score computations served.",
	})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airscore_validation_failures_total",
		Help: "Mission inputs rejected by validation.",
	})

	propellerAnalyses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airscore_propeller_analyses_total",
		Help: "Blade element analyses served.",
	})

	missionScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "airscore_mission_score",
		Help:    "Distribution of computed mission scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 10),
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airscore_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
