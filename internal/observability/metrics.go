// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Intake metrics
	InteractionsReceived *prometheus.CounterVec
	InteractionsStored   *prometheus.CounterVec
	InteractionsRejected *prometheus.CounterVec
	TokenMetaStored      prometheus.Counter

	// Scoring pipeline metrics
	PipelineRunsTotal *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
	WalletsScored     prometheus.Counter
	SnapshotsStored   prometheus.Counter
	ClustersFormed    prometheus.Gauge
	PatternsDetected  prometheus.Counter
	MissingTokenMints prometheus.Gauge

	// Health metrics
	LastSuccessfulIntake   prometheus.Gauge
	LastSuccessfulPipeline prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "whale_radar"
	}

	return &Metrics{
		InteractionsReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "interactions_received_total",
			Help:      "Total number of interaction messages received by source",
		}, []string{"source"}),
		InteractionsStored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "interactions_stored_total",
			Help:      "Total number of interactions stored to database by source",
		}, []string{"source"}),
		InteractionsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "interactions_rejected_total",
			Help:      "Total number of interaction messages rejected by reason",
		}, []string{"source", "reason"}),
		TokenMetaStored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "token_metadata_stored_total",
			Help:      "Total number of token metadata records stored",
		}),

		PipelineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of scoring pipeline runs by status",
		}, []string{"status"}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Scoring pipeline execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		}),
		WalletsScored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "wallets_scored_total",
			Help:      "Total number of wallets scored",
		}),
		SnapshotsStored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "snapshots_stored_total",
			Help:      "Total number of wallet score snapshots stored",
		}),
		ClustersFormed: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "clusters_formed",
			Help:      "Number of behavioral clusters formed in the last run",
		}),
		PatternsDetected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "patterns_detected_total",
			Help:      "Total number of wallets flagged by the pattern detector",
		}),
		MissingTokenMints: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "missing_token_mints",
			Help:      "Number of distinct mints without metadata in the last run",
		}),

		LastSuccessfulIntake: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_intake_timestamp",
			Help:      "Unix timestamp of last successfully stored interaction",
		}),
		LastSuccessfulPipeline: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_pipeline_timestamp",
			Help:      "Unix timestamp of last successful pipeline run",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
