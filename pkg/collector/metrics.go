package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a single kind query.
const (
	outcomeFound   = "found"
	outcomeEmpty   = "empty"
	outcomeNoData  = "nodata"
	outcomeFailure = "error"
)

var (
	kindQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "managed_resources_kind_query_duration_seconds",
			Help:    "Time taken by a single labeled kind query",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	kindQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "managed_resources_kind_query_total",
			Help: "Total number of labeled kind queries",
		},
		[]string{"outcome"}, // found, empty, nodata, error
	)

	collectedRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "managed_resources_records",
			Help: "Number of managed resources per kind in the last report",
		},
		[]string{"kind"},
	)

	redactionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "managed_resources_redactions_total",
			Help: "Total number of backplane service accounts replaced by the placeholder",
		},
	)
)
