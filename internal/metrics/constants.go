package metrics

import "github.com/prometheus/client_golang/prometheus"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameDaysAdvanced   = "inventory_days_advanced_total"
	MetricNameItemsAged      = "inventory_items_aged_total"
	MetricNameItemsExpired   = "inventory_items_expired"
	MetricNameInventoryItems = "inventory_items"
	MetricNameQuality        = "inventory_quality"
	MetricNameItemsStocked   = "inventory_items_stocked_total"
	MetricNameItemsRemoved   = "inventory_items_removed_total"
	MetricNameAgingDuration  = "inventory_aging_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextDaysAdvanced   = "Total number of simulated days advanced"
	HelpTextItemsAged      = "Total number of aging steps applied to non-legendary items"
	HelpTextItemsExpired   = "Current number of items past their sell-by date"
	HelpTextInventoryItems = "Current number of items in stock"
	HelpTextQuality        = "Average quality of items in stock"
	HelpTextItemsStocked   = "Total number of items added to stock"
	HelpTextItemsRemoved   = "Total number of items removed from stock"
	HelpTextAgingDuration  = "Time taken to age the whole inventory by one day"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
	LabelTrigger  = "trigger"
)

// ============================================================================
// Event Payload Field Names
// ============================================================================

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AgingLatencyBuckets covers a single day's aging pass, from 10µs to 1s
// HTTPSizeBuckets spans an empty 204 up to a full year of reports
var HTTPSizeBuckets = prometheus.ExponentialBuckets(64, 4, 8)

// RouteUnmatched labels requests no route pattern matched
const RouteUnmatched = "unmatched"

var AgingLatencyBuckets = []float64{.00001, .0001, .001, .01, .1, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnknown = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
