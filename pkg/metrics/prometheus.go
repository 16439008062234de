// Package metrics provides Prometheus metrics for the calculator service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Manager owns the service's collectors.
type Manager struct {
	namespace       string
	durationBuckets []float64
	registry        prometheus.Registerer

	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	exports             *prometheus.CounterVec
	shareLinks          *prometheus.CounterVec
	rateLimited         prometheus.Counter
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry served at /metrics

var globalManager *Manager //nolint:gochecknoglobals // package-level helpers record here

func init() { //nolint:gochecknoinits // collectors must exist before the first request
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "dunklab",
		durationBuckets: prometheus.DefBuckets,
		registry:        prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "calculations_total",
		Help:      "Calculator submissions by calculator and outcome",
	}, []string{"calculator", "outcome"})

	m.calculationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "calculation_duration_seconds",
		Help:      "Time spent inside the calculation engine",
		Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3},
	}, []string{"calculator"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   m.durationBuckets,
	}, []string{"route", "method"})

	m.exports = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "exports_total",
		Help:      "Rendered result exports by format",
	}, []string{"format"})

	m.shareLinks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "share_links_total",
		Help:      "Share-link operations by action",
	}, []string{"action"})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-IP rate limiter",
	})
}

// RecordCalculation counts one submission for calculator with the given outcome.
func RecordCalculation(calculator, outcome string) {
	globalManager.calculations.WithLabelValues(calculator, outcome).Inc()
}

// ObserveCalculation records a successful calculation and its engine time.
func ObserveCalculation(calculator string, d time.Duration) {
	globalManager.calculations.WithLabelValues(calculator, OutcomeOK).Inc()
	globalManager.calculationDuration.WithLabelValues(calculator).Observe(d.Seconds())
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method string, status int, d time.Duration) {
	globalManager.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	globalManager.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordExport counts one rendered export ("pdf", "xlsx", "png").
func RecordExport(format string) {
	globalManager.exports.WithLabelValues(format).Inc()
}

// RecordShareLink counts a share-link action ("created", "resolved", "rejected").
func RecordShareLink(action string) {
	globalManager.shareLinks.WithLabelValues(action).Inc()
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited() {
	globalManager.rateLimited.Inc()
}

// GetRegistry returns the registry served at /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
