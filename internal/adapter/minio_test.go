// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinioClient implements minioClient with overridable funcs.
type fakeMinioClient struct {
	bucketExistsFunc func(ctx context.Context, bucket string) (bool, error)
	putObjectFunc    func(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	removeObjectFunc func(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

func (f *fakeMinioClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if f.bucketExistsFunc != nil {
		return f.bucketExistsFunc(ctx, bucket)
	}
	return true, nil
}

func (f *fakeMinioClient) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putObjectFunc != nil {
		return f.putObjectFunc(ctx, bucket, object, reader, size, opts)
	}
	return minio.UploadInfo{Bucket: bucket, Key: object, Size: size}, nil
}

func (f *fakeMinioClient) RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error {
	if f.removeObjectFunc != nil {
		return f.removeObjectFunc(ctx, bucket, object, opts)
	}
	return nil
}

func newTestMinIO(t *testing.T, client *fakeMinioClient) *minioStorage {
	t.Helper()
	s, err := newMinIOStorage(context.Background(), client, "media", "http://cdn.local/media", 0, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNewMinIOStorage_BucketMissing(t *testing.T) {
	client := &fakeMinioClient{
		bucketExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
	}
	_, err := newMinIOStorage(context.Background(), client, "media", "", 0, logger.Nop())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewMinIOStorage_BucketCheckFails(t *testing.T) {
	client := &fakeMinioClient{
		bucketExistsFunc: func(context.Context, string) (bool, error) { return false, errors.New("dial tcp") },
	}
	_, err := newMinIOStorage(context.Background(), client, "media", "", 0, logger.Nop())
	assert.ErrorContains(t, err, "dial tcp")
}

func TestMinIOUpload_Success(t *testing.T) {
	localPath := writeTempFile(t, "0192f7a0-aaaa.png", "png-bytes")

	var gotKey, gotType string
	var gotBody []byte
	client := &fakeMinioClient{
		putObjectFunc: func(_ context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			assert.Equal(t, "media", bucket)
			assert.Equal(t, int64(len("png-bytes")), size)
			gotKey, gotType = object, opts.ContentType
			gotBody, _ = io.ReadAll(r)
			return minio.UploadInfo{}, nil
		},
	}

	asset, err := newTestMinIO(t, client).Upload(context.Background(), localPath)

	require.NoError(t, err)
	assert.Equal(t, "0192f7a0-aaaa", gotKey)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "png-bytes", string(gotBody))
	assert.Equal(t, "http://cdn.local/media/0192f7a0-aaaa", asset.URL)
	assert.Equal(t, "0192f7a0-aaaa", asset.PublicID)
}

func TestMinIOUpload_PutFails(t *testing.T) {
	localPath := writeTempFile(t, "a.png", "x")
	client := &fakeMinioClient{
		putObjectFunc: func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("boom")
		},
	}

	_, err := newTestMinIO(t, client).Upload(context.Background(), localPath)
	assert.ErrorContains(t, err, "boom")
}

func TestMinIOUpload_EmptyPath(t *testing.T) {
	_, err := newTestMinIO(t, &fakeMinioClient{}).Upload(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestMinIODelete(t *testing.T) {
	t.Run("removes object", func(t *testing.T) {
		var removed string
		client := &fakeMinioClient{
			removeObjectFunc: func(_ context.Context, _ string, object string, _ minio.RemoveObjectOptions) error {
				removed = object
				return nil
			},
		}
		require.NoError(t, newTestMinIO(t, client).Delete(context.Background(), "abc"))
		assert.Equal(t, "abc", removed)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		client := &fakeMinioClient{
			removeObjectFunc: func(context.Context, string, string, minio.RemoveObjectOptions) error {
				return minio.ErrorResponse{Code: "NoSuchKey"}
			},
		}
		assert.NoError(t, newTestMinIO(t, client).Delete(context.Background(), "abc"))
	})

	t.Run("other errors propagate", func(t *testing.T) {
		client := &fakeMinioClient{
			removeObjectFunc: func(context.Context, string, string, minio.RemoveObjectOptions) error {
				return minio.ErrorResponse{Code: "AccessDenied"}
			},
		}
		assert.Error(t, newTestMinIO(t, client).Delete(context.Background(), "abc"))
	})

	t.Run("empty public id", func(t *testing.T) {
		assert.ErrorIs(t, newTestMinIO(t, &fakeMinioClient{}).Delete(context.Background(), ""), ErrEmptyPublicID)
	})
}
