// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every persistence component used by the service layer.
type Storages struct {
	UserRepository         UserRepository
	TokenRevocationStorage TokenRevocationStorage
	TempFileStorage        TempFileStorage
	HealthChecker          HealthChecker
}

// NewStorages wires the repositories. A nil redisClient disables access
// token revocation.
func NewStorages(db *DB, redisClient *redis.Client, cfg config.Storage, log *logger.Logger) *Storages {
	var revocation TokenRevocationStorage
	if redisClient != nil {
		revocation = NewRedisTokenRevocationStorage(redisClient, log)
	} else {
		log.Warn().Msg("redis is not configured: access tokens stay valid until expiry after logout")
		revocation = NewNopTokenRevocationStorage()
	}

	return &Storages{
		UserRepository:         NewUserRepository(db.Database, log),
		TokenRevocationStorage: revocation,
		TempFileStorage:        NewTempFileStorage(cfg.Files.TempDir, log),
		HealthChecker:          db,
	}
}
