// Package metrics holds the Prometheus instruments of the planner API and the
// helpers that record into them. Instruments register on the default registry
// at package init and are served by promhttp.Handler.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_planner_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trip_planner_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Planning
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_planner_plans_total",
			Help: "Plans produced, by selection path",
		},
		[]string{"path"}, // "matched", "default"
	)

	PlanStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_planner_plan_stops",
			Help:    "Number of stops per produced itinerary",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8},
		},
	)

	UncoveredInterests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trip_planner_uncovered_interests_total",
			Help: "Interests no selected stop matched",
		},
	)

	// Interest extraction cache
	InterestCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trip_planner_interest_cache_hits_total",
			Help: "Interest extraction cache hits",
		},
	)

	InterestCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trip_planner_interest_cache_misses_total",
			Help: "Interest extraction cache misses",
		},
	)

	InterestCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trip_planner_interest_cache_entries",
			Help: "Current number of cached interest extractions",
		},
	)

	// AI collaborators
	AICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_planner_ai_calls_total",
			Help: "Calls to the language model by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "error", "rejected"
	)

	AICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trip_planner_ai_call_duration_seconds",
			Help:    "Language model call latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"operation"},
	)

	AIFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_planner_ai_fallbacks_total",
			Help: "Responses replaced with a local default, by operation",
		},
		[]string{"operation"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trip_planner_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPlan records a produced itinerary.
func RecordPlan(path string, stops, uncovered int) {
	PlansTotal.WithLabelValues(path).Inc()
	PlanStops.Observe(float64(stops))
	if uncovered > 0 {
		UncoveredInterests.Add(float64(uncovered))
	}
}

// RecordInterestCache records a cache lookup and the resulting cache size.
func RecordInterestCache(hit bool, entries int) {
	if hit {
		InterestCacheHits.Inc()
	} else {
		InterestCacheMisses.Inc()
	}
	InterestCacheEntries.Set(float64(entries))
}

// RecordAICall records one language model call. outcome is "ok", "error" or
// "rejected" (the breaker or limiter refused the call).
func RecordAICall(operation, outcome string, duration time.Duration) {
	AICallsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome != "rejected" {
		AICallDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// RecordAIFallback records a response replaced by a local default.
func RecordAIFallback(operation string) {
	AIFallbacksTotal.WithLabelValues(operation).Inc()
}

// SetCircuitBreakerState publishes a breaker state as 0, 1 or 2.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
