// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into the "message" field
// of API response envelopes. Web clients display some of them verbatim, so
// wording and capitalisation must stay stable.
package app

// Registration.
const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgUserAlreadyExists  = "User with email or username already exists"
	MsgAvatarRequired     = "Avatar file is required"
	MsgUserRegistered     = "User registered Successfully"
	MsgInvalidFormData    = "Invalid form data"
	MsgFileTooLarge       = "Uploaded file is too large"
	MsgInvalidJSON        = "Invalid JSON was passed"
	MsgRegistrationFailed = "Something went wrong while registering the user"
)

// Session.
const (
	MsgUsernameOrEmailRequired = "username or email is required"
	MsgUserDoesNotExist        = "User does not exist"
	MsgInvalidCredentials      = "Invalid user credentials"
	MsgUserLoggedIn            = "User logged In Successfully"
	MsgUserLoggedOut           = "User logged Out"

	MsgRefreshUnauthorized       = "unauthorized request"
	MsgInvalidRefreshToken       = "Invalid refresh token"
	MsgRefreshTokenExpiredOrUsed = "Refresh token is expired or used"
	MsgAccessTokenRefreshed      = "Access token refreshed"

	// MsgUnauthorized is written when a protected route is called without
	// an access token.
	MsgUnauthorized       = "Unauthorized request"
	MsgInvalidAccessToken = "Invalid Access Token"
)

// Account.
const (
	MsgPasswordsRequired         = "oldPassword and newPassword are required"
	MsgInvalidOldPassword        = "Invalid old password"
	MsgPasswordChanged           = "Password changed successfully"
	MsgUserFetched               = "User fetched successfully"
	MsgFullNameAndEmailRequired  = "fullName and email are required"
	MsgAccountUpdated            = "Account details updated successfully"
	MsgSelectImage               = "Please select an image"
	MsgAvatarUpdateFailed        = "Error updating avatar"
	MsgAvatarUpdated             = "Avatar updated successfully"
	MsgCoverImageUpdateFailed    = "Error updating cover image"
	MsgCoverImageUpdated         = "Cover Image updated successfully"
	MsgChannelUsernameRequired   = "username is required"
	MsgChannelNotFound           = "channel does not exists"
	MsgChannelProfileFetched     = "Channel profile fetched successfully"
	MsgWatchHistoryFetched       = "Watch history fetched successfully"
)

// Service.
const (
	MsgHealthCheckPassed   = "Health check passed"
	MsgServiceUnavailable  = "Service unavailable"
	MsgNotFound            = "Route not found"
	MsgInternalServerError = "Something went wrong"
)
