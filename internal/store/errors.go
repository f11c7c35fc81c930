// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert or update violates the
	// unique username or email index.
	ErrUserAlreadyExists = errors.New("user with email or username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// document matches none.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrChannelNotFound is returned when the channel profile aggregation
	// yields no document.
	ErrChannelNotFound = errors.New("channel was not found")

	// ErrInvalidFileName is returned when a temporary file path escapes the
	// temp directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors. These wrap driver errors when a
// MongoDB operation fails before any domain logic can be applied.
var (
	// ErrExecutingQuery is returned when a find, count or aggregate fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when an insert or update fails.
	ErrExecutingStatement = errors.New("error executing statement")

	// ErrDecodingDocument is returned when a result document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("error decoding document")
)
