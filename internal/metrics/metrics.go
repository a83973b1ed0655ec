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

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseSize,
			Help:    HelpTextHTTPResponseSize,
			Buckets: HTTPSizeBuckets,
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
	DaysAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
		[]string{LabelTrigger},
	)

	ItemsAged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAged,
			Help: HelpTextItemsAged,
		},
		[]string{LabelCategory},
	)

	ItemsExpired = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemsExpired,
			Help: HelpTextItemsExpired,
		},
	)

	InventoryItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameInventoryItems,
			Help: HelpTextInventoryItems,
		},
		[]string{LabelCategory},
	)

	InventoryQuality = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameQuality,
			Help: HelpTextQuality,
		},
		[]string{LabelCategory},
	)

	ItemsStocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsStocked,
			Help: HelpTextItemsStocked,
		},
		[]string{LabelCategory},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelCategory},
	)

	AgingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAgingDuration,
			Help:    HelpTextAgingDuration,
			Buckets: AgingLatencyBuckets,
		},
	)
)
