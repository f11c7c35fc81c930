// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tubehub/internal/adapter"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/metrics"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/models"
	"golang.org/x/sync/errgroup"
)

type mediaService struct {
	storage adapter.MediaStorage
	temp    store.TempFileStorage

	logger *logger.Logger
}

func NewMediaService(storage adapter.MediaStorage, temp store.TempFileStorage, logger *logger.Logger) MediaService {
	return &mediaService{storage: storage, temp: temp, logger: logger}
}

func (m *mediaService) Upload(ctx context.Context, localPath string) (models.MediaAsset, error) {
	if localPath == "" {
		return models.MediaAsset{}, adapter.ErrEmptyPath
	}
	defer m.Discard(ctx, localPath)

	asset, err := m.storage.Upload(ctx, localPath)
	metrics.RecordMediaOperation(metrics.MediaOpUpload, err)
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("media upload failed: %w", err)
	}
	if asset.URL == "" {
		return models.MediaAsset{}, adapter.ErrEmptyResponse
	}

	return asset, nil
}

// UploadProfileImages fails only when the avatar upload fails; a cover
// failure is logged and yields an empty cover asset.
func (m *mediaService) UploadProfileImages(ctx context.Context, avatarPath, coverPath string) (models.MediaAsset, models.MediaAsset, error) {
	log := logger.FromContext(ctx)

	var avatar, cover models.MediaAsset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		avatar, err = m.Upload(gctx, avatarPath)
		return err
	})

	if coverPath != "" {
		g.Go(func() error {
			var err error
			cover, err = m.Upload(gctx, coverPath)
			if err != nil {
				log.Err(err).Msg("cover image upload failed")
				cover = models.MediaAsset{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if cover.PublicID != "" {
			// the request fails as a whole; drop the orphaned cover
			if derr := m.delete(ctx, cover.PublicID); derr != nil {
				log.Err(derr).Str("public_id", cover.PublicID).Msg("orphaned media asset")
			}
		}
		return models.MediaAsset{}, models.MediaAsset{}, err
	}

	return avatar, cover, nil
}

func (m *mediaService) DeletePrevious(ctx context.Context, previousURL, currentPublicID string) error {
	previousID := models.PublicIDFromURL(previousURL)
	if previousID == "" || previousID == currentPublicID {
		return nil
	}

	if err := m.delete(ctx, previousID); err != nil {
		return fmt.Errorf("previous media deletion failed: %w", err)
	}
	return nil
}

func (m *mediaService) Stage(ctx context.Context, src io.Reader, originalName string) (string, error) {
	localPath, err := m.temp.Save(ctx, src, originalName)
	if err != nil {
		return "", fmt.Errorf("staging upload failed: %w", err)
	}
	return localPath, nil
}

func (m *mediaService) Delete(ctx context.Context, publicID string) error {
	return m.delete(ctx, publicID)
}

func (m *mediaService) delete(ctx context.Context, publicID string) error {
	err := m.storage.Delete(ctx, publicID)
	metrics.RecordMediaOperation(metrics.MediaOpDelete, err)
	return err
}

func (m *mediaService) Discard(ctx context.Context, localPaths ...string) {
	log := logger.FromContext(ctx)

	for _, p := range localPaths {
		if p == "" {
			continue
		}
		if err := m.temp.Remove(ctx, p); err != nil {
			log.Err(err).Str("path", p).Msg("temp file removal failed")
		}
	}
}
