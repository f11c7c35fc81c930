// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user documents and runs the read-only social graph
// aggregations. Username and email arguments are matched lowercased.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID primitive.ObjectID) (models.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (models.User, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, passwordHash string) error
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (models.User, error)
	UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, coverImageURL string) (models.User, error)

	SetRefreshToken(ctx context.Context, userID primitive.ObjectID, refreshToken string) error
	UnsetRefreshToken(ctx context.Context, userID primitive.ObjectID) error

	GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (models.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchedVideo, error)
}

// TokenRevocationStorage keeps the identifiers of access tokens revoked
// before their expiry.
type TokenRevocationStorage interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TempFileStorage holds uploaded files until they are transferred to the
// media host.
type TempFileStorage interface {
	Save(ctx context.Context, src io.Reader, originalName string) (string, error)
	Remove(ctx context.Context, localPath string) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
