// Package metrics exposes Prometheus collectors for the RPC layer and the hour ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCRequests counts finished RPCs by procedure and Connect code.
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutorbooks",
		Name:      "rpc_requests_total",
		Help:      "Finished RPCs by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes RPC latency by procedure.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tutorbooks",
		Name:      "rpc_duration_seconds",
		Help:      "RPC latency by procedure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// HoursDebited counts hours removed from student balances, by course.
	HoursDebited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutorbooks",
		Subsystem: "ledger",
		Name:      "hours_debited_total",
		Help:      "Hours removed from student balances.",
	}, []string{"course"})

	// HoursCredited counts hours added to student balances, by course.
	HoursCredited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutorbooks",
		Subsystem: "ledger",
		Name:      "hours_credited_total",
		Help:      "Hours added to student balances.",
	}, []string{"course"})

	// InsufficientBalance counts debits rejected because the balance did not cover them.
	InsufficientBalance = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorbooks",
		Subsystem: "ledger",
		Name:      "insufficient_balance_total",
		Help:      "Debits rejected for insufficient balance.",
	})

	// StaleWrites counts balance writes rejected by the optimistic version check.
	StaleWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorbooks",
		Subsystem: "ledger",
		Name:      "stale_writes_total",
		Help:      "Balance writes rejected because the student changed concurrently.",
	})
)

// RecordBalanceChange adds a committed balance delta to the debit or credit counter.
func RecordBalanceChange(course string, delta float64) {
	switch {
	case delta > 0:
		HoursCredited.WithLabelValues(course).Add(delta)
	case delta < 0:
		HoursDebited.WithLabelValues(course).Add(-delta)
	}
}
