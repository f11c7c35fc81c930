// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// [Validator] is the single abstraction. Implementations dispatch on the
// concrete request type and accept an optional list of field names that
// restricts validation to those fields; with no names every rule applies.
//
// The only implementation, [UserValidator], covers the account requests
// (registration, login, password change, profile update, channel lookup).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
