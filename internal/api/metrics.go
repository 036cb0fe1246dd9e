package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Parse outcomes recorded by Metrics.
const (
	outcomeValid           = "valid"
	outcomePartial         = "partial"
	outcomeNoIssuer        = "no_issuer"
	outcomeInvalidDocument = "invalid_document"
	outcomeError           = "error"
)

// Metrics holds the parse counters on a private registry, so tests and
// multiple apps in one process don't collide.
type Metrics struct {
	registry *prometheus.Registry
	parses   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the parse metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "card_statement_parses_total",
			Help: "Statement parse requests by issuer and outcome.",
		}, []string{"issuer", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "card_statement_parse_duration_seconds",
			Help:    "Time spent parsing one statement.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.parses, m.duration)
	return m
}

func (m *Metrics) observe(issuer, outcome string, started time.Time) {
	if issuer == "" {
		issuer = "unknown"
	}
	m.parses.WithLabelValues(issuer, outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
