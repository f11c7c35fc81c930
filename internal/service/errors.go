// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")

	ErrAvatarRequired     = errors.New("avatar file is required")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid user credentials")
	ErrInvalidOldPassword = errors.New("invalid old password")

	ErrTokenCreationFailed       = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid   = errors.New("token is expired or invalid")
	ErrRefreshTokenMissing       = errors.New("refresh token is missing")
	ErrInvalidRefreshToken       = errors.New("invalid refresh token")
	ErrRefreshTokenExpiredOrUsed = errors.New("refresh token is expired or used")

	ErrAvatarUpdateFailed     = errors.New("error updating avatar")
	ErrCoverImageUpdateFailed = errors.New("error updating cover image")
)
