package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ingestionsTotal        *prometheus.CounterVec
	ingestionDuration      prometheus.Histogram
	categorizedRecords     *prometheus.GaugeVec
	recategorizationsTotal *prometheus.CounterVec
	storeMutationsTotal    *prometheus.CounterVec
	storeCategories        prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger collectors with the default
// registry. It must be called once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ingestionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_ingestions_total",
				Help: "Total number of ledger ingestions",
			},
			[]string{"status"},
		),
		ingestionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_ingestion_duration_milliseconds",
				Help:    "Ledger ingestion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categorizedRecords: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_categorized_records",
				Help: "Records in the working set by categorization outcome of the last pass",
			},
			[]string{"outcome"},
		),
		recategorizationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_recategorizations_total",
				Help: "Total number of recategorization passes",
			},
			[]string{"mode"},
		),
		storeMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_store_mutations_total",
				Help: "Total number of category store mutations",
			},
			[]string{"operation", "status"},
		),
		storeCategories: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "category_store_categories",
				Help: "Current number of categories in the store",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ingestion":
		if status := tags["status"]; status != "" {
			m.ingestionsTotal.WithLabelValues(status).Inc()
		}
	case "recategorization":
		if mode := tags["mode"]; mode != "" {
			m.recategorizationsTotal.WithLabelValues(mode).Inc()
		}
	case "category_store_mutation":
		m.storeMutationsTotal.WithLabelValues(tags["operation"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ingestion":
		m.ingestionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "categorization":
		if outcome := tags["outcome"]; outcome != "" {
			m.categorizedRecords.WithLabelValues(outcome).Set(value)
		}
	case "store_categories":
		m.storeCategories.Set(value)
	}
}
