// Package metrics defines and registers the custom Prometheus metrics for
// the Roosly site API. It is the single source of truth for metric names,
// labels, and help strings. Registration with the default registry happens
// at import time via promauto; HTTP-level request metrics are handled
// separately by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roosly"

// LoginsTotal counts credential verification attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown user, bad
//     password, and store errors alike — the split is visible in logs only)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CustomerOpsTotal counts customer CRUD operations.
// Labels:
//   - op: "list", "create", "update", "delete"
//   - result: "ok", "invalid" (rejected before the store), "error"
var CustomerOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_operations_total",
		Help:      "Total number of customer CRUD operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ListCacheTotal counts customer list cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_list_cache_total",
		Help:      "Total number of customer list cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
