package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Content Metrics
var (
	MaterialsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMaterialsLoaded,
			Help: HelpTextMaterialsLoaded,
		},
	)

	MaterialDefsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMaterialDefsApplied,
			Help: HelpTextMaterialDefsApplied,
		},
	)

	ContentLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContentLoadFailures,
			Help: HelpTextContentLoadFailures,
		},
		[]string{LabelKind},
	)

	DiagnosticsReported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiagnosticsReported,
			Help: HelpTextDiagnosticsReported,
		},
	)

	RegistryReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRegistryReloads,
			Help: HelpTextRegistryReloads,
		},
		[]string{LabelOutcome},
	)

	ContentLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameContentLoadDuration,
			Help:    HelpTextContentLoadDuration,
			Buckets: ContentLoadBuckets,
		},
		[]string{LabelKind},
	)
)
