package reporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Report run metrics
	reportRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "managed_resources_report_duration_seconds",
			Help:    "Time taken to collect and write a managed resource report",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	reportRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "managed_resources_report_total",
			Help: "Total number of report runs",
		},
		[]string{"status"}, // success, unauthenticated or error
	)

	reportKinds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "managed_resources_report_kinds",
			Help: "Number of kinds in the last written report",
		},
	)

	reportLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "managed_resources_report_last_success_timestamp_seconds",
			Help: "Unix time of the last successfully written report",
		},
	)
)

// WriteMetrics writes every metric of the default registry to path in the
// Prometheus text format, suitable for the node exporter textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
