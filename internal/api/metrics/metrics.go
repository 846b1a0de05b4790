// Package metrics defines and registers all custom Prometheus metrics for the
// BakeryHub storefront client. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bakeryhub"

// ── Backend request metrics ───────────────────────────────────────────────────

// BackendRequestsTotal counts REST calls to the backend collaborator.
// Labels:
//   - group: endpoint group ("accounts", "catalog", "orders", "tenants", "statistics")
//   - code: HTTP status class ("2xx", "4xx", "5xx") or "error" for transport failures
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend REST calls, by endpoint group and status class.",
	},
	[]string{"group", "code"},
)

// BackendRequestDuration measures backend call latency end-to-end.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend REST calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"group"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// NotificationsShownTotal counts notifications shown, by type.
var NotificationsShownTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_shown_total",
		Help:      "Total number of notifications shown, by type.",
	},
	[]string{"type"},
)

// DashboardRefreshesTotal counts widget refreshes triggered by filter changes.
// Label:
//   - result: "applied", "stale" (superseded in flight), or "error"
var DashboardRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_refreshes_total",
		Help:      "Total number of dashboard widget refreshes, by result.",
	},
	[]string{"result"},
)
