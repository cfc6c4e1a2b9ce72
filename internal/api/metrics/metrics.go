// Package metrics defines and registers all custom Prometheus metrics for
// the PechoMax angling API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pechomax"

// ── Progression metrics ──────────────────────────────────────────────────────

// ScoreDeltasAppliedTotal counts score deltas applied by the progression
// engine, labelled by sign ("positive"/"negative").
var ScoreDeltasAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_deltas_applied_total",
		Help:      "Total number of score deltas applied to users.",
	},
	[]string{"sign"},
)

// ProgressionRetriesTotal counts level writes retried after a concurrent
// score update moved the row under them.
var ProgressionRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "progression_retries_total",
		Help:      "Total number of stale level writes retried by the progression engine.",
	},
)

// ProgressionDuration measures one ApplyDelta call end-to-end, including
// level resolution and any retries.
var ProgressionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "progression_duration_seconds",
		Help:      "Duration of a full score/level progression update.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Catch metrics ────────────────────────────────────────────────────────────

// CatchesLoggedTotal counts catches created, labelled by species name.
var CatchesLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catches_logged_total",
		Help:      "Total number of catches logged, by species.",
	},
	[]string{"species"},
)

// ── Auth metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRejectedTotal counts requests turned away by the session
// middleware.
// Label:
//   - reason: "missing_cookie", "malformed", "invalid_signature", "expired", "forbidden"
var SessionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_rejected_total",
		Help:      "Total number of requests rejected at the session boundary, by reason.",
	},
	[]string{"reason"},
)
