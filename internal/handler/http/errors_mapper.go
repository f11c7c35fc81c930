// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/MKhiriev/go-tubehub/internal/service"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/internal/validators"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusMap is matched in order; wrapping errors come before the
// errors they may wrap.
var errorStatusMap = []errorStatus{
	{service.ErrAvatarUpdateFailed, http.StatusInternalServerError, app.MsgAvatarUpdateFailed},
	{service.ErrCoverImageUpdateFailed, http.StatusInternalServerError, app.MsgCoverImageUpdateFailed},
	{service.ErrAvatarRequired, http.StatusBadRequest, app.MsgAvatarRequired},

	{validators.ErrAllFieldsRequired, http.StatusBadRequest, app.MsgAllFieldsRequired},
	{validators.ErrUsernameOrEmailRequired, http.StatusBadRequest, app.MsgUsernameOrEmailRequired},
	{validators.ErrPasswordsRequired, http.StatusBadRequest, app.MsgPasswordsRequired},
	{validators.ErrFullNameAndEmailRequired, http.StatusBadRequest, app.MsgFullNameAndEmailRequired},
	{validators.ErrUsernameRequired, http.StatusBadRequest, app.MsgChannelUsernameRequired},

	{service.ErrUserDoesNotExist, http.StatusNotFound, app.MsgUserDoesNotExist},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrInvalidOldPassword, http.StatusBadRequest, app.MsgInvalidOldPassword},
	{service.ErrRefreshTokenMissing, http.StatusUnauthorized, app.MsgRefreshUnauthorized},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, app.MsgInvalidRefreshToken},
	{service.ErrRefreshTokenExpiredOrUsed, http.StatusUnauthorized, app.MsgRefreshTokenExpiredOrUsed},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidAccessToken},
	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserDoesNotExist},
	{store.ErrChannelNotFound, http.StatusNotFound, app.MsgChannelNotFound},

	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidJSON},
	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{errInvalidForm, http.StatusBadRequest, app.MsgInvalidFormData},
	{errUploadTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
