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

// Engine Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelMode, LabelTier},
	)

	WageredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWageredTotal,
			Help: HelpTextWageredTotal,
		},
		[]string{LabelMode},
	)

	PaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaidTotal,
			Help: HelpTextPaidTotal,
		},
		[]string{LabelMode},
	)

	CurrentRTP = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentRTP,
			Help: HelpTextCurrentRTP,
		},
		[]string{LabelScope},
	)

	RTPStateConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRTPStateConflicts,
			Help: HelpTextRTPStateConflicts,
		},
	)

	FreeSpinsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFreeSpinsTriggered,
			Help: HelpTextFreeSpinsTriggered,
		},
		[]string{LabelMode},
	)

	NFTDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNFTDrops,
			Help: HelpTextNFTDrops,
		},
		[]string{LabelTier},
	)

	ShardsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShardsAwarded,
			Help: HelpTextShardsAwarded,
		},
		[]string{LabelTier},
	)

	ShardsRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShardsRedeemed,
			Help: HelpTextShardsRedeemed,
		},
		[]string{LabelTier},
	)

	PriceQuoteCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceQuoteCacheHits,
			Help: HelpTextPriceQuoteCacheHits,
		},
		[]string{LabelResult},
	)
)
