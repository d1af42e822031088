// Package metrics defines and registers all custom Prometheus metrics for the
// client portal. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Workflow metrics ──────────────────────────────────────────────────────────

// WorkflowActionsTotal counts workflow operations by action and result.
// Labels:
//   - action: the operation name (e.g. "send_proposal", "verify_payment")
//   - result: "ok", "denied", "invalid", or "error"
var WorkflowActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_actions_total",
		Help:      "Total number of workflow operations, by action and result.",
	},
	[]string{"action", "result"},
)

// ProjectsCreatedTotal counts new projects by declared project type.
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by project type.",
	},
	[]string{"project_type"},
)

// ApprovalsPending tracks the size of the derived approval queue as of the
// last scan.
var ApprovalsPending = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "approvals_pending",
		Help:      "Number of projects with anything awaiting superadmin action, per the last queue scan.",
	},
)

// ── Side-channel metrics ──────────────────────────────────────────────────────

// SideChannelJobsTotal counts processed side-channel jobs.
// Labels:
//   - kind: job kind (e.g. "sync_brief", "email_copy")
//   - result: "ok" or "error"
var SideChannelJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sidechannel_jobs_total",
		Help:      "Total number of side-channel jobs processed, by kind and result.",
	},
	[]string{"kind", "result"},
)

// SideChannelQueueDepth tracks pending jobs per dispatcher worker channel.
var SideChannelQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sidechannel_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
