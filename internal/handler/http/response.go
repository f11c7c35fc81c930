// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
)

// emptyData renders as {} in envelopes of operations that return nothing.
var emptyData = struct{}{}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	if _, err := utils.WriteJSON(w, models.NewAPIResponse(status, data, message), status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeResponse").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, errs ...string) {
	if _, err := utils.WriteJSON(w, models.NewAPIError(status, message, errs...), status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("error writing error response")
	}
}

// writeServiceError logs err and renders the envelope mapped from it.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	writeError(w, r, status, message)
}
