// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party media host that stores
// user avatars and cover images.
//
// The primary abstraction is [MediaStorage], which decouples the service layer
// from the concrete host. Three implementations ship with the package:
// Cloudinary over its REST upload API (the default), MinIO and AWS S3.
// [NewMediaStorage] picks one according to the configured driver.
//
// Transport failures are wrapped around the sentinel values in errors.go so
// that callers can use [errors.Is] regardless of the driver in use.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tubehub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaStorage uploads local files to the media host and removes them again.
type MediaStorage interface {
	// Upload sends the file at localPath to the media host and returns the
	// public URL and host-side identifier of the stored asset. The local file
	// is left in place; removing it is the caller's job.
	Upload(ctx context.Context, localPath string) (models.MediaAsset, error)

	// Delete removes the asset identified by publicID. Deleting an asset that
	// no longer exists is not an error.
	Delete(ctx context.Context, publicID string) error
}
