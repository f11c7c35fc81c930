// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tubehub/internal/adapter"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/mock"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMediaSvc(t *testing.T, ctrl *gomock.Controller) (MediaService, *mock.MockMediaStorage, *mock.MockTempFileStorage) {
	t.Helper()
	storage := mock.NewMockMediaStorage(ctrl)
	temp := mock.NewMockTempFileStorage(ctrl)
	return NewMediaService(storage, temp, logger.Nop()), storage, temp
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestMediaService_Upload_RemovesTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)
	ctx := context.Background()

	asset := models.MediaAsset{URL: "https://cdn/a.png", PublicID: "a"}
	gomock.InOrder(
		storage.EXPECT().Upload(ctx, "/tmp/a.png").Return(asset, nil),
		temp.EXPECT().Remove(ctx, "/tmp/a.png").Return(nil),
	)

	got, err := svc.Upload(ctx, "/tmp/a.png")
	require.NoError(t, err)
	assert.Equal(t, asset, got)
}

func TestMediaService_Upload_FailureStillRemovesTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, "/tmp/a.png").Return(models.MediaAsset{}, errors.New("timeout"))
	temp.EXPECT().Remove(ctx, "/tmp/a.png").Return(nil)

	_, err := svc.Upload(ctx, "/tmp/a.png")
	assert.ErrorContains(t, err, "timeout")
}

func TestMediaService_Upload_EmptyURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, "/tmp/a.png").Return(models.MediaAsset{}, nil)
	temp.EXPECT().Remove(ctx, "/tmp/a.png").Return(nil)

	_, err := svc.Upload(ctx, "/tmp/a.png")
	assert.ErrorIs(t, err, adapter.ErrEmptyResponse)
}

func TestMediaService_Upload_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestMediaSvc(t, ctrl)

	_, err := svc.Upload(context.Background(), "")
	assert.ErrorIs(t, err, adapter.ErrEmptyPath)
}

// ── UploadProfileImages ──────────────────────────────────────────────────────

func TestMediaService_UploadProfileImages_Both(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)

	storage.EXPECT().Upload(gomock.Any(), "/tmp/a.png").Return(models.MediaAsset{URL: "ua", PublicID: "a"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "/tmp/c.png").Return(models.MediaAsset{URL: "uc", PublicID: "c"}, nil)
	temp.EXPECT().Remove(gomock.Any(), "/tmp/a.png").Return(nil)
	temp.EXPECT().Remove(gomock.Any(), "/tmp/c.png").Return(nil)

	avatar, cover, err := svc.UploadProfileImages(context.Background(), "/tmp/a.png", "/tmp/c.png")

	require.NoError(t, err)
	assert.Equal(t, "ua", avatar.URL)
	assert.Equal(t, "uc", cover.URL)
}

func TestMediaService_UploadProfileImages_CoverOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)

	storage.EXPECT().Upload(gomock.Any(), "/tmp/a.png").Return(models.MediaAsset{URL: "ua", PublicID: "a"}, nil)
	temp.EXPECT().Remove(gomock.Any(), "/tmp/a.png").Return(nil)

	avatar, cover, err := svc.UploadProfileImages(context.Background(), "/tmp/a.png", "")

	require.NoError(t, err)
	assert.Equal(t, "ua", avatar.URL)
	assert.Zero(t, cover)
}

func TestMediaService_UploadProfileImages_CoverFailureIsTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)

	storage.EXPECT().Upload(gomock.Any(), "/tmp/a.png").Return(models.MediaAsset{URL: "ua", PublicID: "a"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "/tmp/c.png").Return(models.MediaAsset{}, errors.New("too large"))
	temp.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	avatar, cover, err := svc.UploadProfileImages(context.Background(), "/tmp/a.png", "/tmp/c.png")

	require.NoError(t, err)
	assert.Equal(t, "ua", avatar.URL)
	assert.Empty(t, cover.URL)
}

func TestMediaService_UploadProfileImages_AvatarFailureDropsCover(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, temp := newTestMediaSvc(t, ctrl)

	storage.EXPECT().Upload(gomock.Any(), "/tmp/a.png").Return(models.MediaAsset{}, errors.New("boom"))
	storage.EXPECT().Upload(gomock.Any(), "/tmp/c.png").Return(models.MediaAsset{URL: "uc", PublicID: "c"}, nil)
	storage.EXPECT().Delete(gomock.Any(), "c").Return(nil)
	temp.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, _, err := svc.UploadProfileImages(context.Background(), "/tmp/a.png", "/tmp/c.png")
	assert.ErrorContains(t, err, "boom")
}

// ── DeletePrevious / Discard ─────────────────────────────────────────────────

func TestMediaService_DeletePrevious(t *testing.T) {
	tests := []struct {
		name        string
		previousURL string
		currentID   string
		wantDelete  string
	}{
		{"different asset", "https://cdn/v1/old.png", "new", "old"},
		{"same asset", "https://cdn/v1/same.png", "same", ""},
		{"no previous", "", "new", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, storage, _ := newTestMediaSvc(t, ctrl)
			if tt.wantDelete != "" {
				storage.EXPECT().Delete(gomock.Any(), tt.wantDelete).Return(nil)
			}

			require.NoError(t, svc.DeletePrevious(context.Background(), tt.previousURL, tt.currentID))
		})
	}
}

func TestMediaService_DeletePrevious_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, _ := newTestMediaSvc(t, ctrl)

	storage.EXPECT().Delete(gomock.Any(), "old").Return(adapter.ErrUnauthorized)

	err := svc.DeletePrevious(context.Background(), "https://cdn/old.png", "new")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestMediaService_Discard_SkipsEmptyAndIgnoresErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, temp := newTestMediaSvc(t, ctrl)

	temp.EXPECT().Remove(gomock.Any(), "/tmp/a").Return(errors.New("busy"))
	temp.EXPECT().Remove(gomock.Any(), "/tmp/b").Return(nil)

	svc.Discard(context.Background(), "/tmp/a", "", "/tmp/b")
}

// ── Stage ────────────────────────────────────────────────────────────────────

func TestMediaService_Stage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, temp := newTestMediaSvc(t, ctrl)
	ctx := context.Background()
	src := strings.NewReader("png-bytes")

	temp.EXPECT().Save(ctx, src, "me.png").Return("/tmp/uploads/1.png", nil)

	got, err := svc.Stage(ctx, src, "me.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/uploads/1.png", got)
}

func TestMediaService_Stage_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, temp := newTestMediaSvc(t, ctrl)
	ctx := context.Background()

	temp.EXPECT().Save(ctx, gomock.Any(), "me.png").Return("", errors.New("disk full"))

	_, err := svc.Stage(ctx, strings.NewReader("x"), "me.png")
	assert.ErrorContains(t, err, "disk full")
}
