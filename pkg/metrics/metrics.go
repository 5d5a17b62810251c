// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// LeadListDuration observes how long building a lead page takes.
	LeadListDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadgen_lead_list_duration_seconds",
			Help:    "Time spent filtering, paginating and hydrating a lead page",
			Buckets: DefaultBuckets,
		},
		[]string{"view"},
	)

	// LeadExclusions counts leads excluded or restored.
	LeadExclusions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadgen_lead_exclusions_total",
			Help: "Number of lead associations excluded or restored",
		},
		[]string{"action"},
	)

	// WebhookDispatches counts dispatcher webhook calls by webhook and outcome.
	WebhookDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadgen_webhook_dispatches_total",
			Help: "Number of external webhook dispatches",
		},
		[]string{"webhook", "outcome"},
	)

	// WebhookDuration observes the latency of dispatcher webhook calls.
	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadgen_webhook_duration_seconds",
			Help:    "External webhook call latency",
			Buckets: DefaultBuckets,
		},
		[]string{"webhook"},
	)

	// DraftsSwept counts exported drafts deleted by the retention sweep.
	DraftsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadgen_drafts_swept_total",
			Help: "Number of exported email drafts removed by retention",
		},
	)
)

// ObserveLeadList records the duration of a lead list call for the given view.
func ObserveLeadList(excludedView bool, d time.Duration) {
	view := "active"
	if excludedView {
		view = "excluded"
	}
	LeadListDuration.WithLabelValues(view).Observe(d.Seconds())
}

// RecordWebhook records one dispatcher call.
func RecordWebhook(webhook, outcome string, d time.Duration) {
	WebhookDispatches.WithLabelValues(webhook, outcome).Inc()
	WebhookDuration.WithLabelValues(webhook).Observe(d.Seconds())
}
