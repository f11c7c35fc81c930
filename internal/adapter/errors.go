// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnknownDriver = errors.New("unknown media driver")
	ErrEmptyPath     = errors.New("empty local file path")
	ErrEmptyPublicID = errors.New("empty public id")
	ErrEmptyResponse = errors.New("media host returned no asset")

	ErrBadRequest          = errors.New("media host rejected the request")
	ErrUnauthorized        = errors.New("media host credentials rejected")
	ErrForbidden           = errors.New("media host access forbidden")
	ErrNotFound            = errors.New("media asset not found")
	ErrRateLimited         = errors.New("media host rate limit exceeded")
	ErrInternalServerError = errors.New("media host internal error")
)
