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

// Engine metric names
const (
	MetricNameSpinsTotal          = "spins_total"
	MetricNameWageredTotal        = "wagered_total"
	MetricNamePaidTotal           = "paid_total"
	MetricNameCurrentRTP          = "rtp_current"
	MetricNameRTPStateConflicts   = "rtp_state_conflicts_total"
	MetricNameFreeSpinsTriggered  = "free_spins_triggered_total"
	MetricNameNFTDrops            = "nft_drops_total"
	MetricNameShardsAwarded       = "shards_awarded_total"
	MetricNameShardsRedeemed      = "shards_redeemed_total"
	MetricNamePriceQuoteCacheHits = "price_quote_cache_total"
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

// Engine metric help text
const (
	HelpTextSpinsTotal          = "Total number of resolved spins"
	HelpTextWageredTotal        = "Total amount wagered"
	HelpTextPaidTotal           = "Total amount paid out"
	HelpTextCurrentRTP          = "Current return-to-player ratio per state scope"
	HelpTextRTPStateConflicts   = "Compare-and-swap conflicts retried on RTP state"
	HelpTextFreeSpinsTriggered  = "Free spin rounds triggered or retriggered"
	HelpTextNFTDrops            = "Direct collectible drops"
	HelpTextShardsAwarded       = "Shards credited to players"
	HelpTextShardsRedeemed      = "Shard redemptions"
	HelpTextPriceQuoteCacheHits = "Price quote lookups by cache result"
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
	LabelMode   = "mode"
	LabelTier   = "tier"
	LabelScope  = "scope"
	LabelResult = "result"
)

// RouteUnmatched is the path label of requests no route matched
const RouteUnmatched = "unmatched"

// Cache result label values
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
