// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) channelProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	profile, err := h.services.UserService.GetChannelProfile(ctx, chi.URLParam(r, "username"), viewer.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, profile, app.MsgChannelProfileFetched)
}

func (h *Handler) watchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	history, err := h.services.UserService.GetWatchHistory(ctx, user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if history == nil {
		history = []models.WatchedVideo{}
	}

	writeResponse(w, r, http.StatusOK, history, app.MsgWatchHistoryFetched)
}
