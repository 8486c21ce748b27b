package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a heat map run.
type Metrics struct {
	RecordsLoaded      prometheus.Counter
	RecordsTransformed prometheus.Counter
	CellsRendered      prometheus.Counter
	RunFailures        *prometheus.CounterVec // labels: stage={load,transform,render,write}, kind={transfer,format,range,other}
	LastSuccess        prometheus.Gauge

	// Per-bucket cell counts.
	CellsByBucket *prometheus.CounterVec // labels: bucket={0..6}

	FetchDuration prometheus.Histogram
	RunDuration   prometheus.Histogram

	gatherer prometheus.Gatherer
}

func newCollectors() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "records_loaded_total",
			Help:      "Total monthly variance records decoded from the dataset.",
		}),
		RecordsTransformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "records_transformed_total",
			Help:      "Total records that passed validation and were bucketed.",
		}),
		CellsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "cells_rendered_total",
			Help:      "Total heat map cells painted.",
		}),
		RunFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "run_failures_total",
			Help:      "Failed runs by pipeline stage and error kind.",
		}, []string{"stage", "kind"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatmap",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful render.",
		}),
		CellsByBucket: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "cells_by_bucket_total",
			Help:      "Heat map cells painted, by color bucket.",
		}, []string{"bucket"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "fetch_duration_seconds",
			Help:      "Dataset download and decode duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-transform-render run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.RecordsLoaded,
		m.RecordsTransformed,
		m.CellsRendered,
		m.RunFailures,
		m.LastSuccess,
		m.CellsByBucket,
		m.FetchDuration,
		m.RunDuration,
	}
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(m.collectors()...)
	m.gatherer = prometheus.DefaultGatherer
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	reg := prometheus.NewRegistry()
	m := newCollectors()
	reg.MustRegister(m.collectors()...)
	m.gatherer = reg
	return m
}

// WriteTextfile writes the current metric values in the text exposition
// format, for the node exporter textfile collector. The file is replaced
// atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
