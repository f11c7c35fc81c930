// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// withMetrics records request count and latency labelled by the matched
// route pattern, so path parameters do not explode label cardinality.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := newStatusRecorder(w)

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		metrics.ObserveHTTPRequest(r.Method, route, mw.Status(), time.Since(start))
	})
}
