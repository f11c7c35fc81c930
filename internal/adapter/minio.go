// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioClient is the subset of *minio.Client used by the adapter.
type minioClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type minioStorage struct {
	client    minioClient
	bucket    string
	publicURL string
	timeout   time.Duration

	logger *logger.Logger
}

// NewMinIOStorage constructs a [MediaStorage] backed by a MinIO (or any
// S3-compatible) bucket. The bucket must exist.
func NewMinIOStorage(ctx context.Context, cfg config.MinIO, timeout time.Duration, logger *logger.Logger) (MediaStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	storage, err := newMinIOStorage(ctx, client, cfg.Bucket, publicURL, timeout, logger)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func newMinIOStorage(ctx context.Context, client minioClient, bucket, publicURL string, timeout time.Duration, logger *logger.Logger) (*minioStorage, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", ErrNotFound, bucket)
	}

	return &minioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Upload implements [MediaStorage].
func (m *minioStorage) Upload(ctx context.Context, localPath string) (models.MediaAsset, error) {
	if localPath == "" {
		return models.MediaAsset{}, ErrEmptyPath
	}

	f, err := os.Open(localPath)
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("open %q: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("stat %q: %w", localPath, err)
	}

	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	key := objectKey(localPath)
	_, err = m.client.PutObject(ctx, m.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(localPath),
	})
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("minio put %q: %w", key, err)
	}

	m.logger.Debug().Str("func", "minioStorage.Upload").Str("public_id", key).Msg("file uploaded")
	return models.MediaAsset{URL: joinURL(m.publicURL, key), PublicID: key}, nil
}

// Delete implements [MediaStorage].
func (m *minioStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return ErrEmptyPublicID
	}

	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	err := m.client.RemoveObject(ctx, m.bucket, publicID, minio.RemoveObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("minio remove %q: %w", publicID, err)
	}
	return nil
}
