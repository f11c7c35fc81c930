// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors exported on /metrics.
// Collectors are registered on the default registry at package init.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tubehub"

var (
	// HTTPRequestsTotal counts served requests.
	// Labels:
	//   - method: HTTP method
	//   - route: chi route pattern, "unmatched" when no route matched
	//   - status: response status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthEventsTotal counts session events.
	// Labels:
	//   - event: register, login, logout, refresh, change_password
	//   - status: success, failure
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Total number of authentication events",
		},
		[]string{"event", "status"},
	)

	// MediaOperationsTotal counts calls to the media host.
	// Labels:
	//   - operation: upload, delete
	//   - status: success, error
	MediaOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_operations_total",
			Help:      "Total number of media host operations",
		},
		[]string{"operation", "status"},
	)

	// DatabaseUp is 1 while the last database probe succeeded.
	DatabaseUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "database_up",
		Help:      "Whether the last database health probe succeeded",
	})
)

// Auth event constants.
const (
	EventRegister       = "register"
	EventLogin          = "login"
	EventLogout         = "logout"
	EventRefresh        = "refresh"
	EventChangePassword = "change_password"
)

// Media operation constants.
const (
	MediaOpUpload = "upload"
	MediaOpDelete = "delete"
)

// Status label constants.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordAuthEvent counts an auth event as success when err is nil.
func RecordAuthEvent(event string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	AuthEventsTotal.WithLabelValues(event, status).Inc()
}

// RecordMediaOperation counts a media host call as success when err is nil.
func RecordMediaOperation(operation string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	MediaOperationsTotal.WithLabelValues(operation, status).Inc()
}

// SetDatabaseUp updates the database gauge.
func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
		return
	}
	DatabaseUp.Set(0)
}
