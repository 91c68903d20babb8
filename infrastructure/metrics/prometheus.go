// ABOUTME: Prometheus implementation of the pipeline metrics contract
// ABOUTME: Counts catalog fetches and pipeline runs and exposes them over HTTP

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "opencosts"

// Prometheus implements interfaces.Metrics with its own registry
type Prometheus struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	modelsFound   prometheus.Gauge
	providerRows  prometheus.Gauge
	lastRun       prometheus.Gauge
}

// NewPrometheus creates and registers the pipeline collectors
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_fetches_total",
				Help:      "Total number of catalog requests",
			},
			[]string{"kind", "status"}, // status: success|error
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_fetch_duration_seconds",
				Help:      "Catalog request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"kind"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pipeline_runs_total",
				Help:      "Total number of pipeline runs",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pipeline_run_duration_seconds",
				Help:      "Pipeline run duration in seconds",
				Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
		),
		modelsFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_models_found",
			Help:      "Models discovered by the last successful run",
		}),
		providerRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_provider_rows",
			Help:      "Provider rows emitted by the last successful run",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_last_success_timestamp",
			Help:      "Unix timestamp of the last successful run",
		}),
	}

	p.registry.MustRegister(
		p.fetches,
		p.fetchDuration,
		p.runs,
		p.runDuration,
		p.modelsFound,
		p.providerRows,
		p.lastRun,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return p
}

// ObserveFetch records one catalog request
func (p *Prometheus) ObserveFetch(kind string, err error, duration time.Duration) {
	p.fetches.WithLabelValues(kind, status(err)).Inc()
	p.fetchDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// ObserveRun records one pipeline run
func (p *Prometheus) ObserveRun(models, rows int, err error, duration time.Duration) {
	p.runs.WithLabelValues(status(err)).Inc()
	p.runDuration.Observe(duration.Seconds())
	if err != nil {
		return
	}
	p.modelsFound.Set(float64(models))
	p.providerRows.Set(float64(rows))
	p.lastRun.SetToCurrentTime()
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
