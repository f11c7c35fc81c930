// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns credentials and the token lifecycle.
type AuthService interface {
	// RegisterUser uploads the images referenced by req, then creates the user.
	// Temporary files referenced by req are removed in every case.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and issues a token pair. The new refresh
	// token replaces the stored one.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)

	// Logout forgets the stored refresh token and revokes accessToken until
	// its expiry.
	Logout(ctx context.Context, userID primitive.ObjectID, accessToken models.Token) error

	// RefreshTokens exchanges the current refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ChangePassword replaces the password after checking the old one.
	ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error

	// Authenticate verifies an access token and loads its user without
	// credentials.
	Authenticate(ctx context.Context, accessToken string) (models.User, models.Token, error)
}

// UserService manages the profile of an authenticated user and the
// social graph reads.
type UserService interface {
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, req models.UpdateAccountRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, user models.User, localPath string) (models.User, error)
	UpdateCoverImage(ctx context.Context, user models.User, localPath string) (models.User, error)
	GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (models.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchedVideo, error)
}

// MediaService moves temporary uploads to the media host.
type MediaService interface {
	// Stage copies an incoming upload into the temp directory and returns
	// its local path.
	Stage(ctx context.Context, src io.Reader, originalName string) (string, error)

	// Upload sends one file and removes it from the temp directory.
	Upload(ctx context.Context, localPath string) (models.MediaAsset, error)

	// UploadProfileImages uploads avatar and cover concurrently. An empty
	// path yields a zero asset. Both temporary files are removed.
	UploadProfileImages(ctx context.Context, avatarPath, coverPath string) (avatar, cover models.MediaAsset, err error)

	// DeletePrevious removes the asset behind previousURL unless it is empty
	// or refers to currentPublicID.
	DeletePrevious(ctx context.Context, previousURL, currentPublicID string) error

	Delete(ctx context.Context, publicID string) error

	// Discard removes temporary files without uploading them.
	Discard(ctx context.Context, localPaths ...string)
}

// AppInfoService reports build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	HealthCheck(ctx context.Context) (models.HealthStatus, error)
}

// AuthServiceWrapper decorates an AuthService, e.g. with request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper decorates a UserService, e.g. with request validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
