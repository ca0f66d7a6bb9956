package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	searchLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finov_search_latency_ms",
		Help:    "Latency of vector searches in milliseconds",
		Buckets: []float64{10, 25, 50, 75, 100, 150, 200, 300, 500, 800, 1200},
	}, []string{"collection"})

	searchResults = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finov_search_results",
		Help:    "Number of hits returned by a vector search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	}, []string{"collection"})

	completions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "finov_completions_total",
		Help: "Chat completion attempts by model and outcome",
	}, []string{"model", "outcome"})

	fallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finov_completion_fallback_total",
		Help: "Completions that fell back to the secondary model",
	})

	validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "finov_profile_validation_failures_total",
		Help: "Profile validation failures by reason",
	}, []string{"reason"})

	emptyScreens = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finov_empty_screens_total",
		Help: "Stock screens that matched no candidates",
	})
)

func ensureRegistered() {
	once.Do(func() {
		prometheus.MustRegister(searchLatency, searchResults, completions, fallbacks, validationFailures, emptyScreens)
	})
}

// ObserveSearch records latency and hit count for one vector search.
func ObserveSearch(collection string, start time.Time, results int) {
	ensureRegistered()
	dur := time.Since(start).Milliseconds()
	searchLatency.WithLabelValues(collection).Observe(float64(dur))
	searchResults.WithLabelValues(collection).Observe(float64(results))
}

// IncCompletion counts one completion attempt outcome ("ok" or "error").
func IncCompletion(model, outcome string) {
	ensureRegistered()
	completions.WithLabelValues(model, outcome).Inc()
}

// IncFallback counts a switch to the fallback model.
func IncFallback() {
	ensureRegistered()
	fallbacks.Inc()
}

// IncValidationFailure counts a rejected profile by reason code.
func IncValidationFailure(reason string) {
	ensureRegistered()
	validationFailures.WithLabelValues(reason).Inc()
}

// IncEmptyScreen counts a stock screen with zero qualifying candidates.
func IncEmptyScreen() {
	ensureRegistered()
	emptyScreens.Inc()
}
