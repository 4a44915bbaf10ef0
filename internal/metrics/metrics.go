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

// Game Metrics
var (
	ActivitiesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesTotal,
			Help: HelpTextActivitiesTotal,
		},
		[]string{LabelActivity, LabelOutcome},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	ItemsBought = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	ShopLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopLookups,
			Help: HelpTextShopLookups,
		},
		[]string{LabelSource},
	)
)

// Generator Metrics
var (
	GeneratorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGeneratorRequests,
			Help: HelpTextGeneratorRequests,
		},
		[]string{LabelKind, LabelOutcome},
	)

	GeneratorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameGeneratorDuration,
			Help:    HelpTextGeneratorDuration,
			Buckets: GeneratorLatencyBuckets,
		},
		[]string{LabelKind},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)
