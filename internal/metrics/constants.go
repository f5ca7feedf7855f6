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

// Business metric names
const (
	MetricNameChainsBuilt           = "recycling_chains_built_total"
	MetricNameReverseSearchDuration = "recycling_reverse_search_duration_seconds"
	MetricNamePathsFound            = "recycling_paths_found"
	MetricNameQuestToggles          = "quest_toggles_total"
	MetricNameCacheLookups          = "cache_lookups_total"
	MetricNameCatalogSyncs          = "catalog_syncs_total"
	MetricNameCalculatorRuns        = "calculator_runs_total"
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

// Business metric help text
const (
	HelpTextChainsBuilt           = "Total number of recycling trees built"
	HelpTextReverseSearchDuration = "Time spent searching the catalog for recycling sources"
	HelpTextPathsFound            = "Number of recycling paths found per reverse search"
	HelpTextQuestToggles          = "Quest completion toggles by action"
	HelpTextCacheLookups          = "Cache lookups by cache and result"
	HelpTextCatalogSyncs          = "Catalog collection syncs by result"
	HelpTextCalculatorRuns        = "Total number of requirement calculations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelAction     = "action"
	LabelCache      = "cache"
	LabelResult     = "result"
	LabelCollection = "collection"
)

// Label values
const (
	CacheCatalog        = "catalog"
	CacheRecyclingPaths = "recycling_paths"
	CacheResultHit      = "hit"
	CacheResultMiss     = "miss"

	ActionComplete   = "complete"
	ActionUncomplete = "uncomplete"

	SyncResultInserted = "inserted"
	SyncResultUpdated  = "updated"
	SyncResultSkipped  = "skipped"
	SyncResultFailed   = "failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SearchLatencyBuckets covers in-memory graph searches from 100µs to 1s
var SearchLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// PathCountBuckets covers reverse-search result sizes
var PathCountBuckets = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250}
