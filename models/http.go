// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the text fields of the multipart registration form
// together with the local paths of the uploaded images.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`

	// AvatarLocalPath is the temporary file holding the avatar. Required.
	AvatarLocalPath string `json:"-"`

	// CoverImageLocalPath is the temporary file holding the cover image.
	// Optional.
	CoverImageLocalPath string `json:"-"`
}

// LoginRequest identifies the user by username or email.
// At least one of them must be provided.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the JSON body variant of a refresh call. The refresh
// token cookie takes precedence over it.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest replaces the password of the authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateAccountRequest replaces the profile fields of the authenticated user.
type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// LoginResponse is the data part of a successful login envelope.
type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// HealthStatus is the data part of the health check envelope.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
