// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-tubehub/internal/adapter"
	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	MediaService   MediaService
	AppInfoService AppInfoService
}

// NewServices wires the services. Auth and user services are wrapped with
// request validation.
func NewServices(storages *store.Storages, media adapter.MediaStorage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	mediaService := NewMediaService(media, storages.TempFileStorage, logger)

	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	auth := NewAuthValidationService(mediaService).
		Wrap(NewAuthService(storages.UserRepository, storages.TokenRevocationStorage, mediaService, cfg.Auth, logger))
	users := NewUserValidationService().
		Wrap(NewUserService(storages.UserRepository, mediaService, logger))

	return &Services{
		AuthService:    auth,
		UserService:    users,
		MediaService:   mediaService,
		AppInfoService: appInfo,
	}, nil
}
