// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
)

// healthCheck answers 503 while the database does not respond to a ping.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AppInfoService.HealthCheck(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, status, app.MsgHealthCheckPassed)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
