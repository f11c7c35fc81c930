// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password peppering,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-tubehub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey is the key used to store the authenticated user in the context.
	UserCtxKey = contextKey("user")

	// AccessTokenCtxKey is the key used to store the parsed access token
	// presented with the request.
	AccessTokenCtxKey = contextKey("accessToken")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// ok is false when the value is missing or has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// WithAccessToken returns a copy of ctx carrying the parsed access token.
func WithAccessToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, AccessTokenCtxKey, token)
}

// GetAccessTokenFromContext retrieves the parsed access token from the context.
func GetAccessTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(models.Token)
	return token, ok
}
