package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the hub module.
type Metrics struct {
	// Hub pages built, by flow
	HubRenders *prometheus.CounterVec

	// Status maps seeded on first visit, by flow
	StatusesSeeded *prometheus.CounterVec

	// Link status changes, by flow and new status
	StatusUpdates *prometheus.CounterVec

	// Time to load the case and assemble sections
	BuildLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg. Pass nil to use the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		HubRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ethub_hub_renders_total",
			Help: "Total hub pages built by flow",
		}, []string{"flow"}),

		StatusesSeeded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ethub_hub_seeded_total",
			Help: "Total status maps seeded with defaults by flow",
		}, []string{"flow"}),

		StatusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ethub_link_status_updates_total",
			Help: "Total link status changes by flow and new status",
		}, []string{"flow", "status"}),

		BuildLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ethub_hub_build_duration_seconds",
			Help:    "Duration of loading a case and assembling hub sections",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementRender records a hub build.
func (m *Metrics) IncrementRender(flow string) {
	if m != nil {
		m.HubRenders.WithLabelValues(flow).Inc()
	}
}

// IncrementSeeded records a first-visit seeding.
func (m *Metrics) IncrementSeeded(flow string) {
	if m != nil {
		m.StatusesSeeded.WithLabelValues(flow).Inc()
	}
}

// IncrementStatusUpdate records a status change.
func (m *Metrics) IncrementStatusUpdate(flow, status string) {
	if m != nil {
		m.StatusUpdates.WithLabelValues(flow, status).Inc()
	}
}

// ObserveBuildLatency records how long a hub build took.
func (m *Metrics) ObserveBuildLatency(d time.Duration) {
	if m != nil {
		m.BuildLatency.Observe(d.Seconds())
	}
}
