// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tubehub/internal/validators"
	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthValidationService validates requests before they reach the wrapped
// AuthService. Validation errors are returned unwrapped so the transport can
// match them with errors.Is.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
	media     MediaService
}

// NewAuthValidationService builds the wrapper. media discards temp files of
// registrations rejected by validation.
func NewAuthValidationService(media MediaService) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
		media:     media,
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		v.media.Discard(ctx, req.AvatarLocalPath, req.CoverImageLocalPath)
		return models.User{}, err
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID primitive.ObjectID, accessToken models.Token) error {
	return v.inner.Logout(ctx, userID, accessToken)
}

func (v *AuthValidationService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return v.inner.RefreshTokens(ctx, refreshToken)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return err
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, accessToken string) (models.User, models.Token, error) {
	return v.inner.Authenticate(ctx, accessToken)
}

// UserValidationService validates requests before they reach the wrapped
// UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewUserValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, req models.UpdateAccountRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateAccount(ctx, userID, req)
}

func (v *UserValidationService) UpdateAvatar(ctx context.Context, user models.User, localPath string) (models.User, error) {
	return v.inner.UpdateAvatar(ctx, user, localPath)
}

func (v *UserValidationService) UpdateCoverImage(ctx context.Context, user models.User, localPath string) (models.User, error) {
	return v.inner.UpdateCoverImage(ctx, user, localPath)
}

func (v *UserValidationService) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (models.ChannelProfile, error) {
	if err := v.validator.Validate(ctx, validators.ChannelUsername(username)); err != nil {
		return models.ChannelProfile{}, err
	}
	return v.inner.GetChannelProfile(ctx, username, viewerID)
}

func (v *UserValidationService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchedVideo, error) {
	return v.inner.GetWatchHistory(ctx, userID)
}
