// Package metrics defines and registers all custom Prometheus metrics for the
// one-health user API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "onehealth"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "not_found", "bad_credentials", "role_mismatch", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts account creations.
// Label:
//   - source: "admin" (create-user) or "open" (self-registration)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by registration source.",
	},
	[]string{"source"},
)

// CasesCreatedTotal counts newly created doctor cases.
// Label:
//   - status: the initial case status (e.g. "open")
var CasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of doctor cases created, by initial status.",
	},
	[]string{"status"},
)

// CaseListDuration measures how long a paginated case listing takes end-to-end.
var CaseListDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "case_list_duration_seconds",
		Help:      "Duration of paginated case listing queries.",
		Buckets:   prometheus.DefBuckets,
	},
)
