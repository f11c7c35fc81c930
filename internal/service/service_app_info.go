// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/models"
)

const healthStatusOK = "OK"

type appInfoService struct {
	appVersion string
	db         store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// HealthCheck pings the database. A nil checker reports healthy.
func (s *appInfoService) HealthCheck(ctx context.Context) (models.HealthStatus, error) {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			return models.HealthStatus{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
	}

	return models.HealthStatus{Status: healthStatusOK, Version: s.appVersion}, nil
}
