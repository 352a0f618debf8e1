// Package metrics defines and registers the custom Prometheus metrics of the
// paste API. Metrics are registered with the default registry on package
// init via promauto; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "paste"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected bearer-authenticated requests.
// Label:
//   - reason: "missing_header", "invalid_token", "stale_identity", "forbidden_role" or "store_error"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware or role gate.",
	},
	[]string{"reason"},
)

// SignupsTotal counts accounts created, by role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersDeletedTotal counts deleted accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of deleted accounts.",
	},
)

// ── Paste metrics ─────────────────────────────────────────────────────────────

// PastesCreatedTotal counts newly created pastes.
// Label:
//   - access: "PUBLIC" or "PRIVATE"
var PastesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pastes_created_total",
		Help:      "Total number of pastes created, by access level.",
	},
	[]string{"access"},
)

// PastesDeletedTotal counts deleted pastes.
var PastesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pastes_deleted_total",
		Help:      "Total number of pastes deleted through the API.",
	},
)

// PasteReplaysTotal counts paste creations answered from an earlier request
// with the same Idempotency-Key.
var PasteReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "paste_idempotent_replays_total",
		Help:      "Total number of paste creations replayed by idempotency key.",
	},
)
