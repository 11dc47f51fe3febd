package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
)

// MetricsConfig configures Metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric (default: "jsxdom").
	Namespace string

	ConstLabels prometheus.Labels

	// Buckets are the render duration histogram buckets.
	Buckets []float64

	// Registry receives the collectors (default:
	// prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the registerer.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

// Metrics counts construction activity. It is safe for concurrent use,
// so one instance can observe every Runtime of a server.
type Metrics struct {
	nodes    *prometheus.CounterVec
	bindings *prometheus.CounterVec
	renders  *prometheus.HistogramVec
}

var _ jsx.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors. It panics if they are already
// registered with the same registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "jsxdom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		nodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "nodes_total",
			Help:        "Nodes created by kind.",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		bindings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "bindings_total",
			Help:        "Props bound by binding decision.",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		renders: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Page render duration in seconds.",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page", "status"}),
	}
}

// NodeCreated implements jsx.Observer.
func (m *Metrics) NodeCreated(kind dom.NodeType) {
	m.nodes.WithLabelValues(kind.String()).Inc()
}

// PropertyBound implements jsx.Observer.
func (m *Metrics) PropertyBound(kind jsx.BindingKind) {
	m.bindings.WithLabelValues(kind.String()).Inc()
}

// ObserveRender records a page render.
func (m *Metrics) ObserveRender(page string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.renders.WithLabelValues(page, status).Observe(d.Seconds())
}
