// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tubehub/internal/adapter"
	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/handler"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/server"
	"github.com/MKhiriev/go-tubehub/internal/service"
	"github.com/MKhiriev/go-tubehub/internal/store"
	"github.com/MKhiriev/go-tubehub/internal/workers"
	"github.com/MKhiriev/go-tubehub/models"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	if err := run(build); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version()
	}

	log := logger.NewLogger("go-tubehub", cfg.App.LogLevel)
	log.Info().
		Str("version", cfg.App.Version).
		Str("commit", build.BuildCommit()).
		Msg("starting go-tubehub")
	log.Debug().Any("config", cfg.Server).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		return fmt.Errorf("error connecting database: %w", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Storage.Redis.Address != "" {
		redisClient, err = store.NewConnectRedis(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return fmt.Errorf("error connecting redis: %w", err)
		}
		defer redisClient.Close()
	}

	storages := store.NewStorages(db, redisClient, cfg.Storage, log)

	media, err := adapter.NewMediaStorage(ctx, cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating media storage: %w", err)
	}

	services, err := service.NewServices(storages, media, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	bg := workers.NewWorkers(
		workers.NewHealthProbe(services.AppInfoService, cfg.Workers.HealthCheckInterval, log, handlers.SetServing),
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(build.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(build.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(build.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
