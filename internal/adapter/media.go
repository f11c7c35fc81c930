// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
)

// NewMediaStorage builds the [MediaStorage] selected by cfg.Media.Driver.
func NewMediaStorage(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (MediaStorage, error) {
	switch cfg.Media.Driver {
	case config.MediaDriverCloudinary, "":
		return NewCloudinaryStorage(cfg.Cloudinary, cfg.Media.Timeout, logger)
	case config.MediaDriverMinIO:
		return NewMinIOStorage(ctx, cfg.MinIO, cfg.Media.Timeout, logger)
	case config.MediaDriverS3:
		return NewS3Storage(cfg.S3, cfg.Media.Timeout, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Media.Driver)
	}
}

// objectKey derives the bucket key for a local file: its base name without
// extension, so that the key equals the public id parsed back from the URL.
func objectKey(localPath string) string {
	base := filepath.Base(localPath)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

func contentType(localPath string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

// withTimeout bounds ctx by d; zero leaves ctx unchanged.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
