// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

type s3Storage struct {
	uploader  s3manageriface.UploaderAPI
	client    s3iface.S3API
	bucket    string
	publicURL string
	timeout   time.Duration

	logger *logger.Logger
}

// NewS3Storage constructs a [MediaStorage] backed by an AWS S3 bucket.
// A non-empty cfg.Endpoint switches to path-style addressing for
// S3-compatible endpoints.
func NewS3Storage(cfg config.S3, timeout time.Duration, logger *logger.Logger) (MediaStorage, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &s3Storage{
		uploader:  s3manager.NewUploader(sess),
		client:    s3.New(sess),
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Upload implements [MediaStorage]. The returned URL uses cfg.PublicURL when
// set and the upload location reported by S3 otherwise.
func (s *s3Storage) Upload(ctx context.Context, localPath string) (models.MediaAsset, error) {
	if localPath == "" {
		return models.MediaAsset{}, ErrEmptyPath
	}

	f, err := os.Open(localPath)
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("open %q: %w", localPath, err)
	}
	defer f.Close()

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	key := objectKey(localPath)
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("s3 upload %q: %w", key, err)
	}

	assetURL := out.Location
	if s.publicURL != "" {
		assetURL = joinURL(s.publicURL, key)
	}
	if assetURL == "" {
		return models.MediaAsset{}, ErrEmptyResponse
	}

	s.logger.Debug().Str("func", "s3Storage.Upload").Str("public_id", key).Msg("file uploaded")
	return models.MediaAsset{URL: assetURL, PublicID: key}, nil
}

// Delete implements [MediaStorage].
func (s *s3Storage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return ErrEmptyPublicID
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}
		return fmt.Errorf("s3 delete %q: %w", publicID, err)
	}
	return nil
}
