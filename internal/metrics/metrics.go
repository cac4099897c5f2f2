// Package metrics exposes Prometheus counters for the core operations.
// Counters register on the default registry; an embedding application
// decides whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PartiesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "parties_created_total",
		Help:      "Parties created.",
	})

	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "party_expenses_recorded_total",
		Help:      "Shared expenses recorded across all parties.",
	})

	SettlementsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "settlements_computed_total",
		Help:      "Party summary queries that derived a settlement plan.",
	})

	TransactionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "transactions_recorded_total",
		Help:      "Personal-ledger transactions recorded.",
	})

	BackupsExported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "backups_exported_total",
		Help:      "Backup archives encoded.",
	})

	BackupsImported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "backups_imported_total",
		Help:      "Backup archives imported successfully.",
	})

	ImportFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cuentasclaras",
		Name:      "backup_import_failures_total",
		Help:      "Backup imports rejected or failed.",
	})
)
