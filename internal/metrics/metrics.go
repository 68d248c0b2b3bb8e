package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ledgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apacheair",
			Name:      "ledger_operations_total",
			Help:      "Ledger operations by name.",
		},
		[]string{"op"},
	)

	ledgerOperationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apacheair",
			Name:      "ledger_operation_errors_total",
			Help:      "Failed ledger operations by name.",
		},
		[]string{"op"},
	)

	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apacheair",
			Name:      "seat_cache_requests_total",
			Help:      "Seat cache lookups by result (hit/miss/error).",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(ledgerOperations, ledgerOperationErrors, cacheRequests)
	})
}

// IncOp counts one ledger operation.
func IncOp(op string) {
	ledgerOperations.WithLabelValues(op).Inc()
}

// IncOpError counts one failed ledger operation.
func IncOpError(op string) {
	ledgerOperationErrors.WithLabelValues(op).Inc()
}

// IncCache counts one seat cache lookup result.
func IncCache(result string) {
	cacheRequests.WithLabelValues(result).Inc()
}
