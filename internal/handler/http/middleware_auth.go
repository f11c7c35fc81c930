// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tubehub/internal/app"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/service"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/rs/zerolog"
)

// auth rejects requests without a valid access token.
//
// The token is taken from the "accessToken" cookie, or from an
// "Authorization: Bearer <token>" header when the cookie is absent. On
// success the authenticated user and the parsed token are stored in the
// request context (see [utils.GetUserFromContext]).
//
// Responses:
//   - 401 "Unauthorized request" when no token is presented;
//   - 401 "Invalid Access Token" when the token fails verification, was
//     revoked on logout, or its user no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, present := accessTokenFromRequest(r)
		if !present {
			log.Debug().Msg("no access token presented")
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		user, token, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Debug().Err(err).Msg("access token rejected")
				writeError(w, r, http.StatusUnauthorized, app.MsgInvalidAccessToken)
				return
			}
			writeServiceError(w, r, err)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID.Hex())
		})

		ctx = log.WithContext(ctx)
		ctx = utils.WithUser(ctx, user)
		ctx = utils.WithAccessToken(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessTokenFromRequest reports whether any token was presented. A
// malformed Authorization header counts as presented so that it is
// rejected as invalid rather than missing.
func accessTokenFromRequest(r *http.Request) (string, bool) {
	if v := cookieValue(r, accessTokenCookie); v != "" {
		return v, true
	}

	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		return header, true
	}
	return tokenString, true
}
