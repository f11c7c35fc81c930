// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisTokenRevocation_RevokeAndCheck(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewRedisTokenRevocationStorage(client, logger.Nop())
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, mr.Exists("revoked_access:jti-1"))
	assert.Equal(t, time.Minute, mr.TTL("revoked_access:jti-1"))
}

func TestRedisTokenRevocation_Expires(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewRedisTokenRevocationStorage(client, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-2", time.Second))
	mr.FastForward(2 * time.Second)

	revoked, err := s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevocation_SkipsExpiredOrEmpty(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewRedisTokenRevocationStorage(client, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-3", 0))
	require.NoError(t, s.Revoke(ctx, "", time.Minute))
	assert.Empty(t, mr.Keys())

	revoked, err := s.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevocation_ServerDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewRedisTokenRevocationStorage(client, logger.Nop())
	mr.Close()

	_, err := s.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
	assert.Error(t, s.Revoke(context.Background(), "jti", time.Minute))
}

func TestNopTokenRevocation(t *testing.T) {
	s := NewNopTokenRevocationStorage()

	require.NoError(t, s.Revoke(context.Background(), "jti", time.Minute))
	revoked, err := s.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewConnectRedis(context.Background(), redisConfig(mr.Addr()), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewConnectRedis(context.Background(), redisConfig(mr.Addr()), logger.Nop())
	assert.Error(t, err)
}

func redisConfig(addr string) config.Redis {
	return config.Redis{Address: addr}
}
