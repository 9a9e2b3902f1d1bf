// Package metrics provides Prometheus metrics for foliosh sessions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	commandsTotal      *prometheus.CounterVec
	commandDuration    *prometheus.HistogramVec
	validationFindings *prometheus.CounterVec
	sessionsTotal      prometheus.Counter
	treeNodes          prometheus.Gauge
}

// New registers the foliosh collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foliosh_commands_total",
				Help: "Total number of executed commands",
			},
			[]string{"command", "exit_code"},
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "foliosh_command_duration_seconds",
				Help:    "Command execution time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"command"},
		),
		validationFindings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foliosh_validation_findings_total",
				Help: "Total number of validator errors and warnings",
			},
			[]string{"severity"},
		),
		sessionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foliosh_sessions_total",
				Help: "Total number of started or restarted sessions",
			},
		),
		treeNodes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "foliosh_tree_nodes",
				Help: "Number of files and directories in the served tree",
			},
		),
	}
}

// ObserveCommand records one finished command.
func (m *Metrics) ObserveCommand(name string, exitCode int, elapsed time.Duration) {
	m.commandsTotal.WithLabelValues(name, strconv.Itoa(exitCode)).Inc()
	m.commandDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// ObserveValidation records the validator's findings for one command.
func (m *Metrics) ObserveValidation(errors, warnings int) {
	if errors > 0 {
		m.validationFindings.WithLabelValues("error").Add(float64(errors))
	}
	if warnings > 0 {
		m.validationFindings.WithLabelValues("warning").Add(float64(warnings))
	}
}

// SessionStarted counts a new or restarted session.
func (m *Metrics) SessionStarted() {
	m.sessionsTotal.Inc()
}

// SetTreeNodes records the size of the served tree.
func (m *Metrics) SetTreeNodes(n int) {
	m.treeNodes.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
