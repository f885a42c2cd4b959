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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	SubmissionsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionsAccepted,
			Help: HelpTextSubmissionsAccepted,
		},
	)

	SubmissionsDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionsDenied,
			Help: HelpTextSubmissionsDenied,
		},
	)

	SubmissionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionsRejected,
			Help: HelpTextSubmissionsRejected,
		},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	MultipliersUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMultipliersUnlocked,
			Help: HelpTextMultipliersUnlocked,
		},
	)
)

// Recalculation Metrics
var (
	RecalculationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecalculationRuns,
			Help: HelpTextRecalculationRuns,
		},
		[]string{LabelTeam},
	)

	RecalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecalculationErrors,
			Help: HelpTextRecalculationErrors,
		},
		[]string{LabelTeam},
	)

	RecalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecalculationSeconds,
			Help:    HelpTextRecalculationSeconds,
			Buckets: RecalculationBuckets,
		},
	)
)
