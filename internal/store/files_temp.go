// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/utils"
)

// tempFileStorage is the local-disk implementation of [TempFileStorage].
// Files are named with a fresh UUID keeping the original extension, so
// concurrent uploads of equally named files never collide.
type tempFileStorage struct {
	dir    string
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewTempFileStorage constructs a [TempFileStorage] rooted at dir. The
// directory is created on first use.
func NewTempFileStorage(dir string, logger *logger.Logger) TempFileStorage {
	logger.Debug().Str("dir", dir).Msg("creating temp file storage")
	return &tempFileStorage{
		dir:    dir,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Save copies src into a new file in the temp directory and returns its path.
// A partially written file is removed on failure.
func (s *tempFileStorage) Save(ctx context.Context, src io.Reader, originalName string) (string, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		log.Err(err).Str("func", "*tempFileStorage.Save").Msg("error creating temp dir")
		return "", fmt.Errorf("error creating temp dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	localPath := filepath.Join(s.dir, s.uuid.Generate()+ext)

	dst, err := os.OpenFile(localPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		log.Err(err).Str("func", "*tempFileStorage.Save").Msg("error creating temp file")
		return "", fmt.Errorf("error creating temp file: %w", err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		log.Err(err).Str("func", "*tempFileStorage.Save").Msg("error writing temp file")
		_ = os.Remove(localPath)
		return "", fmt.Errorf("error writing temp file: %w", err)
	}

	return localPath, nil
}

// Remove deletes a file previously returned by Save. Removing a missing file
// is not an error; paths outside the temp directory are rejected.
func (s *tempFileStorage) Remove(ctx context.Context, localPath string) error {
	if localPath == "" {
		return nil
	}

	rel, err := filepath.Rel(s.dir, localPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, localPath)
	}

	if err = os.Remove(localPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*tempFileStorage.Remove").Msg("error removing temp file")
		return fmt.Errorf("error removing temp file: %w", err)
	}

	return nil
}
