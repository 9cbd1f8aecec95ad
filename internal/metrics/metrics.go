// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vct_dataset_rows",
		Help: "Number of player records in the loaded dataset",
	})

	DatasetLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vct_dataset_load_duration_seconds",
		Help:    "Duration of the startup dataset load",
		Buckets: prometheus.DefBuckets,
	})

	// ModelLoads counts artifact reads by result (ok, not_found, error)
	ModelLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vct_model_loads_total",
		Help: "Total number of prediction model loads",
	}, []string{"result"})

	ModelLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vct_model_load_duration_seconds",
		Help:    "Duration of prediction model loads",
		Buckets: prometheus.DefBuckets,
	})

	Predictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vct_predictions_total",
		Help: "Total number of cluster predictions by predicted cluster",
	}, []string{"cluster"})

	PredictionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vct_prediction_errors_total",
		Help: "Total number of failed predictions",
	})

	// ViewCache counts cache lookups by view and result (hit, miss)
	ViewCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vct_view_cache_requests_total",
		Help: "View cache lookups",
	}, []string{"view", "result"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vct_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	WarmupJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vct_warmup_jobs_total",
		Help: "View cache warm-up jobs by result (ok, failed, dropped)",
	}, []string{"result"})

	WarmupQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vct_warmup_queue_depth",
		Help: "Current depth of the warm-up queue",
	})
)
