package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of key-value store operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"backend", "operation", "key"},
	)

	// Accrual Metrics
	TaskCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_completions_total",
			Help: "Total number of task completion toggles",
		},
		[]string{"criticality", "direction"}, // direction: complete/uncomplete
	)

	PointsAwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "points_awarded_total",
			Help: "Total points awarded for completions",
		},
	)

	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_redemptions_total",
			Help: "Reward redemption attempts by result",
		},
		[]string{"result"}, // redeemed, insufficient_points, not_found
	)

	StreakResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "streak_resets_total",
			Help: "Number of times a streak decayed to zero",
		},
	)

	CurrentStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profile_streak_days",
			Help: "Current completion streak in days",
		},
	)

	PointsBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profile_points",
			Help: "Current points balance",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)
)

// TrackStoreOperation times one store call. Callers defer ObserveDuration.
func TrackStoreOperation(backend, operation, key string) *prometheus.Timer {
	return prometheus.NewTimer(StoreOperationDuration.WithLabelValues(backend, operation, key))
}

func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}

func TrackCompletion(criticality string, completed bool, points int) {
	direction := "uncomplete"
	if completed {
		direction = "complete"
		PointsAwardedTotal.Add(float64(points))
	}
	TaskCompletionsTotal.WithLabelValues(criticality, direction).Inc()
}

func TrackRedemption(result string) {
	RedemptionsTotal.WithLabelValues(result).Inc()
}

// TrackProfile publishes the profile gauges.
func TrackProfile(points, streak int) {
	PointsBalance.Set(float64(points))
	CurrentStreak.Set(float64(streak))
}
