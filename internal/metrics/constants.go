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

// Content metric names
const (
	MetricNameMaterialsLoaded     = "materials_loaded"
	MetricNameMaterialDefsApplied = "material_definitions_applied_total"
	MetricNameContentLoadFailures = "content_load_failures_total"
	MetricNameDiagnosticsReported = "materials_diagnostics_total"
	MetricNameRegistryReloads     = "materials_registry_reloads_total"
	MetricNameContentLoadDuration = "content_load_duration_seconds"
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

// Content metric help text
const (
	HelpTextMaterialsLoaded     = "Number of materials in the active registry"
	HelpTextMaterialDefsApplied = "Total number of material definitions applied to a registry"
	HelpTextContentLoadFailures = "Total number of content files that failed to load"
	HelpTextDiagnosticsReported = "Total number of content diagnostics reported by check"
	HelpTextRegistryReloads     = "Total number of registry reloads by outcome"
	HelpTextContentLoadDuration = "Time spent loading a content set in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ContentLoadBuckets covers content loads from 1ms to 30s
var ContentLoadBuckets = []float64{.001, .01, .05, .1, .5, 1, 5, 10, 30}
