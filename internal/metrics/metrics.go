package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ethstore",
		Subsystem: "records",
		Name:      "upserted_total",
		Help:      "Total records written through upsert",
	})

	RecordsRead = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ethstore",
		Subsystem: "records",
		Name:      "read_total",
		Help:      "Total records decoded by full-table reads",
	})

	// Errors is partitioned by operation (upsert, read_all) and kind (decode, storage).
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ethstore",
		Subsystem: "records",
		Name:      "errors_total",
		Help:      "Total failed record operations",
	}, []string{"operation", "kind"})
)
