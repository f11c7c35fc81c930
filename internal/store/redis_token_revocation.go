// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/redis/go-redis/v9"
)

const revokedAccessTokenKeyPrefix = "revoked_access:"

// redisTokenRevocationStorage implements [TokenRevocationStorage] with one
// Redis key per revoked token id, expiring together with the token.
type redisTokenRevocationStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisTokenRevocationStorage creates a Redis-backed revocation list.
func NewRedisTokenRevocationStorage(client *redis.Client, logger *logger.Logger) TokenRevocationStorage {
	logger.Debug().Msg("creating redis token revocation storage")
	return &redisTokenRevocationStorage{
		client: client,
		logger: logger,
	}
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl means the
// token has already expired and nothing is stored.
func (s *redisTokenRevocationStorage) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.buildKey(tokenID), 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisTokenRevocationStorage.Revoke").Msg("error revoking token")
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// IsRevoked reports whether tokenID was revoked and has not expired yet.
func (s *redisTokenRevocationStorage) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, s.buildKey(tokenID)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisTokenRevocationStorage.IsRevoked").Msg("error checking token")
		return false, fmt.Errorf("redis exists: %w", err)
	}

	return n > 0, nil
}

func (s *redisTokenRevocationStorage) buildKey(tokenID string) string {
	return revokedAccessTokenKeyPrefix + tokenID
}

// nopTokenRevocationStorage never revokes anything.
type nopTokenRevocationStorage struct{}

// NewNopTokenRevocationStorage returns a [TokenRevocationStorage] used when
// Redis is not configured.
func NewNopTokenRevocationStorage() TokenRevocationStorage {
	return nopTokenRevocationStorage{}
}

func (nopTokenRevocationStorage) Revoke(context.Context, string, time.Duration) error { return nil }

func (nopTokenRevocationStorage) IsRevoked(context.Context, string) (bool, error) { return false, nil }
