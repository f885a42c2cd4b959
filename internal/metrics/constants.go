package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSubmissionsAccepted  = "submissions_accepted_total"
	MetricNameSubmissionsDenied    = "submissions_denied_total"
	MetricNameSubmissionsRejected  = "submissions_rejected_total"
	MetricNamePointsAwarded        = "points_awarded_total"
	MetricNameMultipliersUnlocked  = "multipliers_unlocked_total"
	MetricNameRecalculationRuns    = "recalculation_runs_total"
	MetricNameRecalculationErrors  = "recalculation_errors_total"
	MetricNameRecalculationSeconds = "recalculation_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSubmissionsAccepted  = "Total number of submissions accepted by reviewers"
	HelpTextSubmissionsDenied    = "Total number of submissions denied by reviewers"
	HelpTextSubmissionsRejected  = "Total number of submissions rejected because the item was maxed"
	HelpTextPointsAwarded        = "Total marginal points awarded across all accepted submissions"
	HelpTextMultipliersUnlocked  = "Total number of multipliers unlocked"
	HelpTextRecalculationRuns    = "Total number of participant recalculation runs"
	HelpTextRecalculationErrors  = "Total number of failed participant recalculation runs"
	HelpTextRecalculationSeconds = "Participant recalculation run duration in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTeam   = "team"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RecalculationBuckets covers full-roster recalculation runs, which scale with
// participant count rather than request latency.
var RecalculationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
