// Package metrics defines the custom Prometheus metrics for the booking
// backend's authentication surface. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics together with the HTTP metrics from
// echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", "invalid_request", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// AdminProvisionTotal counts administrator provisioning attempts.
// Label:
//   - outcome: "provisioned", "already_provisioned", "invalid_request", "error"
var AdminProvisionTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_provision_total",
		Help:      "Total number of admin provisioning attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)
