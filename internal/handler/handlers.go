// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers built for the configured
// listen addresses.
package handler

import (
	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/handler/grpc"
	"github.com/MKhiriev/go-tubehub/internal/handler/http"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured address. The REST API is
// served over HTTP; gRPC carries only the health protocol.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing forwards the database probe result to the gRPC health service
// when one is running.
func (h *Handlers) SetServing(ok bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(ok)
	}
}
