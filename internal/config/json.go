// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and human readable durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		AccessTokenSecret  string   `json:"access_token_secret"`
		AccessTokenExpiry  Duration `json:"access_token_expiry"`
		RefreshTokenSecret string   `json:"refresh_token_secret"`
		RefreshTokenExpiry Duration `json:"refresh_token_expiry"`
		TokenIssuer        string   `json:"token_issuer"`
		PasswordHashKey    string   `json:"password_hash_key"`
		BcryptCost         int      `json:"bcrypt_cost"`
	} `json:"auth,omitempty"`

	Storage struct {
		Mongo struct {
			URI            string   `json:"uri"`
			Database       string   `json:"database"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"mongo,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Files struct {
			TempDir string `json:"temp_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigin     string   `json:"cors_origin"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		Media struct {
			Driver  string   `json:"driver"`
			Timeout Duration `json:"timeout"`
		} `json:"media,omitempty"`

		Cloudinary Cloudinary `json:"cloudinary,omitempty"`
		MinIO      MinIO      `json:"minio,omitempty"`
		S3         S3         `json:"s3,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			AccessTokenSecret:  jsonCfg.Auth.AccessTokenSecret,
			AccessTokenExpiry:  time.Duration(jsonCfg.Auth.AccessTokenExpiry),
			RefreshTokenSecret: jsonCfg.Auth.RefreshTokenSecret,
			RefreshTokenExpiry: time.Duration(jsonCfg.Auth.RefreshTokenExpiry),
			TokenIssuer:        jsonCfg.Auth.TokenIssuer,
			PasswordHashKey:    jsonCfg.Auth.PasswordHashKey,
			BcryptCost:         jsonCfg.Auth.BcryptCost,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:            jsonCfg.Storage.Mongo.URI,
				Database:       jsonCfg.Storage.Mongo.Database,
				ConnectTimeout: time.Duration(jsonCfg.Storage.Mongo.ConnectTimeout),
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Files: Files{
				TempDir: jsonCfg.Storage.Files.TempDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigin:     jsonCfg.Server.CORSOrigin,
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			Media: Media{
				Driver:  jsonCfg.Adapter.Media.Driver,
				Timeout: time.Duration(jsonCfg.Adapter.Media.Timeout),
			},
			Cloudinary: jsonCfg.Adapter.Cloudinary,
			MinIO:      jsonCfg.Adapter.MinIO,
			S3:         jsonCfg.Adapter.S3,
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
