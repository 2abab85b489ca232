// Package observability exposes Prometheus metrics for the simulation and
// scoring paths plus the HTTP surface. All collectors live on a private
// registry so tests can run in parallel without collisions.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lattelab"

// Metrics holds every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	// SimulationsTotal counts simulation invocations by suite and run status.
	SimulationsTotal *prometheus.CounterVec

	// SimulationDuration measures wall time per simulation invocation.
	SimulationDuration prometheus.Histogram

	// PromptScoresTotal counts prompt scoring invocations.
	PromptScoresTotal prometheus.Counter

	// PromptScoreValue observes the combined quality score distribution.
	PromptScoreValue prometheus.Histogram

	// HTTPRequestsTotal counts API requests by method, route, and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration measures API request latency by route.
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics builds the collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		SimulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Simulation invocations by suite and resulting run status.",
		}, []string{"suite", "status"}),
		SimulationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_seconds",
			Help:      "Wall time spent generating one suite payload.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		PromptScoresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompt_scores_total",
			Help:      "Prompt quality scoring invocations.",
		}),
		PromptScoreValue: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prompt_score_value",
			Help:      "Distribution of combined prompt quality scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by method, route pattern, and status code.",
		}, []string{"method", "route", "code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSimulation records one simulation invocation. Safe on a nil
// receiver so callers without metrics wired stay unchanged.
func (m *Metrics) ObserveSimulation(suite, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SimulationsTotal.WithLabelValues(suite, status).Inc()
	m.SimulationDuration.Observe(elapsed.Seconds())
}

// ObservePromptScore records one scoring invocation and its combined score.
func (m *Metrics) ObservePromptScore(combined float64) {
	if m == nil {
		return
	}
	m.PromptScoresTotal.Inc()
	m.PromptScoreValue.Observe(combined)
}

// ObserveHTTPRequest records one API request.
func (m *Metrics) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
