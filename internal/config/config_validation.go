// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if err := cfg.Auth.validate(); err != nil {
		return err
	}

	if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
		return fmt.Errorf("%w: mongo uri and database are required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.TempDir == "" {
		return fmt.Errorf("%w: temp dir is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a Auth) validate() error {
	if a.AccessTokenSecret == "" || a.RefreshTokenSecret == "" {
		return fmt.Errorf("%w: token secrets are required", ErrInvalidAuthConfigs)
	}
	if a.AccessTokenSecret == a.RefreshTokenSecret {
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidAuthConfigs)
	}
	if a.AccessTokenExpiry <= 0 || a.RefreshTokenExpiry <= 0 {
		return fmt.Errorf("%w: token expiry must be positive", ErrInvalidAuthConfigs)
	}
	if a.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAuthConfigs)
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidAuthConfigs, a.BcryptCost)
	}

	return nil
}

func (a Adapter) validate() error {
	switch a.Media.Driver {
	case MediaDriverCloudinary:
		c := a.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" || c.BaseURL == "" {
			return fmt.Errorf("%w: cloudinary credentials are required", ErrInvalidAdapterConfigs)
		}
	case MediaDriverMinIO:
		m := a.MinIO
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("%w: minio endpoint, credentials and bucket are required", ErrInvalidAdapterConfigs)
		}
	case MediaDriverS3:
		if a.S3.Region == "" || a.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 region and bucket are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown media driver %q", ErrInvalidAdapterConfigs, a.Media.Driver)
	}

	return nil
}
