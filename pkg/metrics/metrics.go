// Package metrics registers the Prometheus instrumentation for the dashboard.
// Observe helpers are nil-safe so packages can record without caring whether
// Init ran (tests generally skip it).
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "helioview_"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	datasetLoads   *prometheus.CounterVec
	datasetLatency *prometheus.HistogramVec

	chartRenders  *prometheus.CounterVec
	chartLatency  *prometheus.HistogramVec
	exportsTotal  *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers the dashboard metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		datasetLoads = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dataset_loads_total",
				Help: "Total dataset loads by load state",
			},
			[]string{"state"},
		)
		datasetLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dataset_load_latency_seconds",
				Help:    "Dataset load latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"state"},
		)

		chartRenders = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "chart_renders_total",
				Help: "Total chart renders by chart and result",
			},
			[]string{"chart", "result"},
		)
		chartLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "chart_render_latency_seconds",
				Help:    "Chart render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"chart", "result"},
		)

		exportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total document exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Document export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			datasetLoads,
			datasetLatency,
			chartRenders,
			chartLatency,
			exportsTotal,
			exportLatency,
		)
	})
}

// ObserveDatasetLoad records one dataset load by state.
func ObserveDatasetLoad(state string, duration time.Duration) {
	if state == "" {
		state = "unknown"
	}
	if datasetLoads != nil {
		datasetLoads.WithLabelValues(state).Inc()
	}
	if datasetLatency != nil {
		datasetLatency.WithLabelValues(state).Observe(duration.Seconds())
	}
}

// ObserveChartRender records one chart render.
func ObserveChartRender(chart, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if chartRenders != nil {
		chartRenders.WithLabelValues(chart, result).Inc()
	}
	if chartLatency != nil {
		chartLatency.WithLabelValues(chart, result).Observe(duration.Seconds())
	}
}

// ObserveExport records one document export.
func ObserveExport(format, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if exportsTotal != nil {
		exportsTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}
