// Package metrics defines the Prometheus collectors published by the scan
// pipeline. Collectors are registered on the default registerer so the
// optional metrics server can expose them without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// InFlightProbes tracks how many HTTP probes hold an admission slot right now.
	InFlightProbes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "swaggerhunter",
		Name:      "inflight_probes",
		Help:      "Number of HTTP probes currently in flight.",
	})

	// ProbeDuration observes the wall time of individual candidate probes.
	ProbeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "swaggerhunter",
		Name:      "probe_duration_seconds",
		Help:      "Latency of individual candidate URL probes.",
		Buckets:   DefaultBuckets,
	})

	// ProbesTotal counts probe outcomes by classification.
	ProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "swaggerhunter",
		Name:      "probes_total",
		Help:      "Candidate probes by outcome.",
	}, []string{"outcome"})

	// DomainsScannedTotal counts fully processed domains.
	DomainsScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swaggerhunter",
		Name:      "domains_scanned_total",
		Help:      "Domains whose candidate set has fully resolved.",
	})

	// FindingsTotal counts confirmed specification endpoints.
	FindingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swaggerhunter",
		Name:      "findings_total",
		Help:      "Confirmed specification endpoints.",
	})
)
