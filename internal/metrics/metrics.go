// Package metrics defines and registers all custom Prometheus metrics
// for the eduline client. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at import time via
// promauto; an embedding shell decides whether and where to expose
// them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eduline_client"

// RequestsTotal counts outbound API requests.
// Labels:
//   - method: HTTP method of the request (e.g. "GET")
//   - status: numeric response status, or "error" when no response was received
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests sent through the pipeline.",
	},
	[]string{"method", "status"},
)

// AuthRejectionsTotal counts 401 responses that triggered session teardown.
var AuthRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected with 401, each forcing a local session teardown.",
	},
)

// RequestDuration measures end-to-end request latency.
// Label:
//   - method: HTTP method of the request
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests from construction to envelope decode.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)
