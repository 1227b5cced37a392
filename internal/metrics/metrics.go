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

// Backend Metrics
var (
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackendRequestsTotal,
			Help: HelpTextBackendRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBackendRequestDuration,
			Help:    HelpTextBackendRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Gateway Metrics
var (
	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelKind, LabelResult},
	)

	EditKeysStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEditKeysStored,
			Help: HelpTextEditKeysStored,
		},
		[]string{LabelStoreType},
	)

	GridConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGridConflicts,
			Help: HelpTextGridConflicts,
		},
		[]string{LabelKind},
	)

	SearchesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
		[]string{LabelObject},
	)
)
