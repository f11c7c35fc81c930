// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/service"
)

// defaultMaxUploadSize applies when the server config leaves the multipart
// limit unset.
const defaultMaxUploadSize = 10 << 20

type Handler struct {
	services *service.Services

	corsOrigin    string
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		corsOrigin:    cfg.CORSOrigin,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
