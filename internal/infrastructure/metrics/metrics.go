// Package metrics exposes the service's Prometheus collectors. They are
// package-level promauto collectors so every layer records to the same
// default registry served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatementsBuilt counts running-balance statements assembled.
	StatementsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "demayoreo_statements_built_total",
		Help: "Total number of account statements built",
	})

	// BalanceCorrections counts corrective balance writes from the
	// drift sweep.
	BalanceCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "demayoreo_balance_corrections_total",
		Help: "Total number of account balance drift corrections written",
	})

	// ReconciliationsClosed counts expense/invoice reconciliations
	// closed.
	ReconciliationsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "demayoreo_reconciliations_closed_total",
		Help: "Total number of expense reconciliations closed",
	})

	// AutoReconGroupsDetected counts detected auto-reconciliation
	// groups by status.
	AutoReconGroupsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demayoreo_autorecon_groups_detected_total",
			Help: "Total number of auto-reconciliation groups detected by status",
		},
		[]string{"status"},
	)

	// AutoReconGroupsProcessed counts groups converted into
	// consolidated payments.
	AutoReconGroupsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "demayoreo_autorecon_groups_processed_total",
		Help: "Total number of auto-reconciliation groups processed into payments",
	})
)
