// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/MKhiriev/go-tubehub/internal/metrics"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
)

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	err := h.services.AuthService.ChangePassword(ctx, user.ID, req)
	metrics.RecordAuthEvent(metrics.EventChangePassword, err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, emptyData, app.MsgPasswordChanged)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	writeResponse(w, r, http.StatusOK, user, app.MsgUserFetched)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	var req models.UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateAccount(ctx, user.ID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, updated, app.MsgAccountUpdated)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "avatar", h.services.UserService.UpdateAvatar, app.MsgAvatarUpdated)
}

func (h *Handler) updateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "coverImage", h.services.UserService.UpdateCoverImage, app.MsgCoverImageUpdated)
}

type imageUpdater func(ctx context.Context, user models.User, localPath string) (models.User, error)

// replaceImage stages the single file part named field and hands it to update.
func (h *Handler) replaceImage(w http.ResponseWriter, r *http.Request, field string, update imageUpdater, okMessage string) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	if err := h.parseMultipart(w, r); err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer releaseMultipart(r)

	localPath, err := h.stageFile(r, field)
	if err != nil {
		if errors.Is(err, errNoFile) {
			writeError(w, r, http.StatusBadRequest, app.MsgSelectImage)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	updated, err := update(ctx, user, localPath)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, updated, okMessage)
}
