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

// Backend metric names
const (
	MetricNameBackendRequestsTotal   = "backend_requests_total"
	MetricNameBackendRequestDuration = "backend_request_duration_seconds"
)

// Gateway metric names
const (
	MetricNameCatalogCacheLookups = "catalog_cache_lookups_total"
	MetricNameEditKeysStored      = "edit_keys_stored_total"
	MetricNameGridConflicts       = "grid_conflicts_total"
	MetricNameSearchesPerformed   = "searches_performed_total"
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

// Backend metric help text
const (
	HelpTextBackendRequestsTotal   = "Total number of requests sent to the backend API"
	HelpTextBackendRequestDuration = "Backend API request latency in seconds"
)

// Gateway metric help text
const (
	HelpTextCatalogCacheLookups = "Catalog cache lookups by result"
	HelpTextEditKeysStored      = "Total number of edit keys stored for anonymous parties"
	HelpTextGridConflicts       = "Grid invariant violations seen in backend party data"
	HelpTextSearchesPerformed   = "Total number of searches performed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelEndpoint  = "endpoint"
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelObject    = "object"
	LabelStoreType = "store"
)

// Cache lookup results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// StatusTransportError labels backend calls that never got a response
const StatusTransportError = "error"

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
