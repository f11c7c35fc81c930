// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tubehub/models"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

func setAuthCookies(w http.ResponseWriter, pair models.TokenPair) {
	http.SetCookie(w, authCookie(accessTokenCookie, pair.AccessToken))
	http.SetCookie(w, authCookie(refreshTokenCookie, pair.RefreshToken))
}

func clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c := authCookie(name, "")
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func authCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	}
}

// cookieValue returns the value of the named cookie or "".
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
