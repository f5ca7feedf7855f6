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

// Recycling Metrics
var (
	ChainsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChainsBuilt,
			Help: HelpTextChainsBuilt,
		},
	)

	ReverseSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameReverseSearchDuration,
			Help:    HelpTextReverseSearchDuration,
			Buckets: SearchLatencyBuckets,
		},
	)

	PathsFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePathsFound,
			Help:    HelpTextPathsFound,
			Buckets: PathCountBuckets,
		},
	)
)

// Progress & catalog metrics
var (
	QuestToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestToggles,
			Help: HelpTextQuestToggles,
		},
		[]string{LabelAction},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelCache, LabelResult},
	)

	CatalogSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncs,
			Help: HelpTextCatalogSyncs,
		},
		[]string{LabelCollection, LabelResult},
	)

	CalculatorRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCalculatorRuns,
			Help: HelpTextCalculatorRuns,
		},
	)
)
