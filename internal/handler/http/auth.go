// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/metrics"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.parseMultipart(w, r); err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer releaseMultipart(r)

	req := models.RegisterRequest{
		FullName: r.FormValue("fullName"),
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	avatarPath, err := h.stageFile(r, "avatar")
	if err != nil && !errors.Is(err, errNoFile) {
		writeServiceError(w, r, err)
		return
	}

	coverPath, err := h.stageFile(r, "coverImage")
	if err != nil && !errors.Is(err, errNoFile) {
		h.services.MediaService.Discard(ctx, avatarPath)
		writeServiceError(w, r, err)
		return
	}

	req.AvatarLocalPath = avatarPath
	req.CoverImageLocalPath = coverPath

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	metrics.RecordAuthEvent(metrics.EventRegister, err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID.Hex()).Msg("user registered")
	writeResponse(w, r, http.StatusCreated, user, app.MsgUserRegistered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, pair, err := h.services.AuthService.Login(r.Context(), req)
	metrics.RecordAuthEvent(metrics.EventLogin, err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setAuthCookies(w, pair)
	writeResponse(w, r, http.StatusOK, models.LoginResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, app.MsgUserLoggedIn)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}
	token, _ := utils.GetAccessTokenFromContext(ctx)

	err := h.services.AuthService.Logout(ctx, user.ID, token)
	metrics.RecordAuthEvent(metrics.EventLogout, err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	clearAuthCookies(w)
	writeResponse(w, r, http.StatusOK, emptyData, app.MsgUserLoggedOut)
}

// refreshToken reads the refresh token from its cookie, falling back to the
// JSON body.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	incoming := cookieValue(r, refreshTokenCookie)
	if incoming == "" {
		var req models.RefreshRequest
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
			logger.FromRequest(r).Debug().Err(err).Msg("unreadable refresh request body")
		}
		incoming = req.RefreshToken
	}

	pair, err := h.services.AuthService.RefreshTokens(r.Context(), incoming)
	metrics.RecordAuthEvent(metrics.EventRefresh, err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setAuthCookies(w, pair)
	writeResponse(w, r, http.StatusOK, pair, app.MsgAccessTokenRefreshed)
}
