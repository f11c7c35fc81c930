// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userService struct {
	userRepository store.UserRepository
	media          MediaService

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, media MediaService, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, media: media, logger: logger}
}

// UpdateAccount returns store.ErrUserAlreadyExists when the email belongs to
// another user.
func (s *userService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, req models.UpdateAccountRequest) (models.User, error) {
	user, err := s.userRepository.UpdateAccount(ctx, userID, req.FullName, req.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("account update failed: %w", err)
	}
	return user, nil
}

// UpdateAvatar uploads the new avatar, stores its URL and deletes the
// previous asset. Every failure is wrapped in ErrAvatarUpdateFailed.
func (s *userService) UpdateAvatar(ctx context.Context, user models.User, localPath string) (models.User, error) {
	updated, err := s.replaceImage(ctx, user.ID, localPath, user.Avatar, s.userRepository.UpdateAvatar)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrAvatarUpdateFailed, err)
	}
	return updated, nil
}

// UpdateCoverImage is UpdateAvatar for the cover image.
func (s *userService) UpdateCoverImage(ctx context.Context, user models.User, localPath string) (models.User, error) {
	updated, err := s.replaceImage(ctx, user.ID, localPath, user.CoverImage, s.userRepository.UpdateCoverImage)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCoverImageUpdateFailed, err)
	}
	return updated, nil
}

type imageUpdateFunc func(ctx context.Context, userID primitive.ObjectID, url string) (models.User, error)

func (s *userService) replaceImage(ctx context.Context, userID primitive.ObjectID, localPath, previousURL string, update imageUpdateFunc) (models.User, error) {
	asset, err := s.media.Upload(ctx, localPath)
	if err != nil {
		return models.User{}, err
	}

	updated, err := update(ctx, userID, asset.URL)
	if err != nil {
		if derr := s.media.Delete(ctx, asset.PublicID); derr != nil {
			logger.FromContext(ctx).Err(derr).Str("public_id", asset.PublicID).Msg("orphaned media asset")
		}
		return models.User{}, err
	}

	if err = s.media.DeletePrevious(ctx, previousURL, asset.PublicID); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (s *userService) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (models.ChannelProfile, error) {
	profile, err := s.userRepository.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		return models.ChannelProfile{}, fmt.Errorf("channel profile lookup failed: %w", err)
	}
	return profile, nil
}

func (s *userService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchedVideo, error) {
	history, err := s.userRepository.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("watch history lookup failed: %w", err)
	}
	return history, nil
}
