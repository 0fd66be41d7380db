package records

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "case_records_mutations_total",
			Help: "Total number of applied case record mutations",
		},
		[]string{"operation"},
	)

	collectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "case_records_collection_size",
			Help: "Number of case records currently held",
		},
	)

	persistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "case_records_persistence_failures_total",
			Help: "Total number of failed loads and saves of the case record collection",
		},
		[]string{"operation"},
	)
)
