// Package metrics defines and registers the custom Prometheus metrics for
// the RepoMarket development backend. It is the single source of truth for
// metric names, labels, and help strings; the default registry picks them
// up via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repomarket"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: the requested role (ADMIN/DEVELOPER/BUYER)
//   - result: "success" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// AuthFailuresTotal counts rejected authenticated requests.
// Label:
//   - reason: "unauthorized" (401) or "forbidden" (403)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authenticated requests, by reason.",
	},
	[]string{"reason"},
)
