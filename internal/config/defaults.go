// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Auth: Auth{
			AccessTokenExpiry:  24 * time.Hour,
			RefreshTokenExpiry: 10 * 24 * time.Hour,
			TokenIssuer:        "go-tubehub",
			BcryptCost:         10,
		},
		Storage: Storage{
			Mongo: Mongo{
				Database:       "videotube",
				ConnectTimeout: 10 * time.Second,
			},
			Files: Files{
				TempDir: "./public/temp",
			},
		},
		Server: Server{
			HTTPAddress:    ":8000",
			RequestTimeout: 30 * time.Second,
			CORSOrigin:     "*",
			MaxUploadSize:  10 << 20,
		},
		Adapter: Adapter{
			Media: Media{
				Driver:  MediaDriverCloudinary,
				Timeout: time.Minute,
			},
			Cloudinary: Cloudinary{
				BaseURL: "https://api.cloudinary.com",
			},
		},
		Workers: Workers{
			HealthCheckInterval: 15 * time.Second,
		},
	}
}
