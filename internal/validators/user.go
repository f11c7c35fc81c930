// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tubehub/models"
)

// Field name constants accepted by [UserValidator.Validate].
const (
	// FieldRegistration requires every text field of a registration form.
	FieldRegistration = "registration"

	// FieldUsernameOrEmail requires at least one login identifier.
	FieldUsernameOrEmail = "username_or_email"

	// FieldPasswords requires both the old and the new password.
	FieldPasswords = "passwords"

	// FieldProfile requires both fullName and email of an account update.
	FieldProfile = "profile"

	// FieldUsername requires a non-blank channel username.
	FieldUsername = "username"
)

// ChannelUsername is the path parameter of a channel profile lookup.
type ChannelUsername string

// UserValidator validates account requests. Values are checked after
// trimming surrounding whitespace.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.UpdateAccountRequest:
		return v.validateUpdateAccount(value, fields...)
	case *models.UpdateAccountRequest:
		return v.validateUpdateAccount(*value, fields...)

	case ChannelUsername:
		return v.validateUsername(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegistration}
	}

	for _, f := range fields {
		switch f {
		case FieldRegistration:
			if anyBlank(req.FullName, req.Email, req.Username, req.Password) {
				return ErrAllFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsernameOrEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsernameOrEmail:
			if isBlank(req.Username) && isBlank(req.Email) {
				return ErrUsernameOrEmailRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasswords}
	}

	for _, f := range fields {
		switch f {
		case FieldPasswords:
			// passwords are not trimmed: whitespace is significant
			if req.OldPassword == "" || req.NewPassword == "" {
				return ErrPasswordsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateAccount(req models.UpdateAccountRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			if anyBlank(req.FullName, req.Email) {
				return ErrFullNameAndEmailRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUsername(username ChannelUsername, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(string(username)) {
				return ErrUsernameRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func anyBlank(values ...string) bool {
	for _, s := range values {
		if isBlank(s) {
			return true
		}
	}
	return false
}
