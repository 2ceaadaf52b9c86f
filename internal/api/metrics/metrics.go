// Package metrics defines and registers all custom Prometheus metrics for the
// klantinteracties API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "klantinteracties"

// ── Remote API metrics ───────────────────────────────────────────────────────

// RemoteRequestsTotal counts HTTP calls made to sibling APIs.
// Labels:
//   - resource: remote resource name (e.g. "zaakcontactmoment")
//   - operation: "list", "create", "retrieve" or "delete"
//   - outcome: "ok" or "error"
var RemoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_requests_total",
		Help:      "Total number of requests sent to remote APIs.",
	},
	[]string{"resource", "operation", "outcome"},
)

// RemoteRequestDuration measures the latency of remote API calls, retries included.
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of remote API calls including retries.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource", "operation"},
)

// ── Relation consistency metrics ─────────────────────────────────────────────

// RelationValidationsTotal counts remote relation checks.
// Labels:
//   - phase: "create" or "delete"
//   - result: "ok" or the validation error code
var RelationValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "relation_validations_total",
		Help:      "Total number of remote relation validations, by phase and result.",
	},
	[]string{"phase", "result"},
)

// SyncFailuresTotal counts failed pushes or retractions of mirrored relations.
// Labels:
//   - resource: remote resource name
//   - phase: "create" or "delete"
var SyncFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_failures_total",
		Help:      "Total number of failed outbound relation synchronisations.",
	},
	[]string{"resource", "phase"},
)

// PendingDeletes tracks how many retractions are in flight per pending set.
var PendingDeletes = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_deletes",
		Help:      "Number of resources whose remote retraction is in flight.",
	},
	[]string{"kind"},
)

// ── Resource metrics ─────────────────────────────────────────────────────────

// ResourcesCreatedTotal counts newly created resources.
// Label:
//   - resource: collection name (e.g. "klanten", "verzoeken")
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by collection.",
	},
	[]string{"resource"},
)
