// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/mock"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockMediaService) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	media := mock.NewMockMediaService(ctrl)
	return NewUserService(repo, media, logger.Nop()), repo, media
}

// ── UpdateAccount ────────────────────────────────────────────────────────────

func TestUserService_UpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.EXPECT().UpdateAccount(ctx, id, "Jane", "j@e.com").Return(models.User{ID: id, FullName: "Jane"}, nil)

	user, err := svc.UpdateAccount(ctx, id, models.UpdateAccountRequest{FullName: "Jane", Email: "j@e.com"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.FullName)
}

func TestUserService_UpdateAccount_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().UpdateAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.UpdateAccount(ctx, primitive.NewObjectID(), models.UpdateAccountRequest{FullName: "a", Email: "b"})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ── UpdateAvatar / UpdateCoverImage ──────────────────────────────────────────

func TestUserService_UpdateAvatar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, media := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID(), Avatar: "https://cdn/old.png"}

	gomock.InOrder(
		media.EXPECT().Upload(ctx, "/tmp/new.png").Return(models.MediaAsset{URL: "https://cdn/new.png", PublicID: "new"}, nil),
		repo.EXPECT().UpdateAvatar(ctx, user.ID, "https://cdn/new.png").Return(models.User{ID: user.ID, Avatar: "https://cdn/new.png"}, nil),
		media.EXPECT().DeletePrevious(ctx, "https://cdn/old.png", "new").Return(nil),
	)

	updated, err := svc.UpdateAvatar(ctx, user, "/tmp/new.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.png", updated.Avatar)
}

func TestUserService_UpdateAvatar_UploadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, media := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	media.EXPECT().Upload(ctx, gomock.Any()).Return(models.MediaAsset{}, errors.New("boom"))

	_, err := svc.UpdateAvatar(ctx, models.User{ID: primitive.NewObjectID()}, "/tmp/x.png")
	assert.ErrorIs(t, err, ErrAvatarUpdateFailed)
}

func TestUserService_UpdateAvatar_DBFailureDeletesNewAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, media := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	media.EXPECT().Upload(ctx, gomock.Any()).Return(models.MediaAsset{URL: "u", PublicID: "new"}, nil)
	repo.EXPECT().UpdateAvatar(ctx, gomock.Any(), "u").Return(models.User{}, store.ErrExecutingStatement)
	media.EXPECT().Delete(ctx, "new").Return(nil)

	_, err := svc.UpdateAvatar(ctx, models.User{ID: primitive.NewObjectID()}, "/tmp/x.png")
	assert.ErrorIs(t, err, ErrAvatarUpdateFailed)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestUserService_UpdateCoverImage_DeletePreviousFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, media := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID(), CoverImage: "https://cdn/old.jpg"}

	media.EXPECT().Upload(ctx, gomock.Any()).Return(models.MediaAsset{URL: "https://cdn/new.jpg", PublicID: "new"}, nil)
	repo.EXPECT().UpdateCoverImage(ctx, user.ID, "https://cdn/new.jpg").Return(models.User{}, nil)
	media.EXPECT().DeletePrevious(ctx, "https://cdn/old.jpg", "new").Return(errors.New("denied"))

	_, err := svc.UpdateCoverImage(ctx, user, "/tmp/c.jpg")
	assert.ErrorIs(t, err, ErrCoverImageUpdateFailed)
}

// ── Social graph reads ───────────────────────────────────────────────────────

func TestUserService_GetChannelProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	viewer := primitive.NewObjectID()

	repo.EXPECT().GetChannelProfile(ctx, "jane", viewer).Return(models.ChannelProfile{Username: "jane", SubscriberCount: 3}, nil)

	profile, err := svc.GetChannelProfile(ctx, "jane", viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.SubscriberCount)
}

func TestUserService_GetChannelProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)

	repo.EXPECT().GetChannelProfile(gomock.Any(), "nobody", gomock.Any()).Return(models.ChannelProfile{}, store.ErrChannelNotFound)

	_, err := svc.GetChannelProfile(context.Background(), "nobody", primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrChannelNotFound)
}

func TestUserService_GetWatchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	id := primitive.NewObjectID()

	repo.EXPECT().GetWatchHistory(gomock.Any(), id).Return([]models.WatchedVideo{{Title: "Intro"}}, nil)

	history, err := svc.GetWatchHistory(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Intro", history[0].Title)
}
