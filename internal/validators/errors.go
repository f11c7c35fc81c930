// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAllFieldsRequired        = errors.New("all fields are required")
	ErrUsernameOrEmailRequired  = errors.New("username or email is required")
	ErrPasswordsRequired        = errors.New("old and new passwords are required")
	ErrFullNameAndEmailRequired = errors.New("fullName and email are required")
	ErrUsernameRequired         = errors.New("username is required")
)
