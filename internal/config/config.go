// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported media storage drivers.
const (
	MediaDriverCloudinary = "cloudinary"
	MediaDriverMinIO      = "minio"
	MediaDriverS3         = "s3"
)

// StructuredConfig is the top-level configuration container for the
// go-tubehub server. It aggregates all sub-configurations and is
// populated by merging values from defaults, a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Auth holds token secrets, lifetimes and password hashing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for MongoDB, Redis and the temporary
	// upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, CORS and limit settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the media host integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Overrides the build version reported by the health check when set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds token and password settings.
type Auth struct {
	// AccessTokenSecret signs access tokens.
	// Env: AUTH_ACCESS_TOKEN_SECRET
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`

	// AccessTokenExpiry is the access token lifetime (e.g. "24h").
	// Env: AUTH_ACCESS_TOKEN_EXPIRY
	AccessTokenExpiry time.Duration `env:"ACCESS_TOKEN_EXPIRY"`

	// RefreshTokenSecret signs refresh tokens. Must differ from
	// AccessTokenSecret.
	// Env: AUTH_REFRESH_TOKEN_SECRET
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`

	// RefreshTokenExpiry is the refresh token lifetime (e.g. "240h").
	// Env: AUTH_REFRESH_TOKEN_EXPIRY
	RefreshTokenExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashKey is the HMAC pepper applied to passwords before bcrypt.
	// Env: AUTH_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// BcryptCost is the bcrypt work factor.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	Mongo Mongo `envPrefix:"MONGO_"`
	Redis Redis `envPrefix:"REDIS_"`
	Files Files `envPrefix:"FILES_"`
}

// Mongo holds the document database connection settings.
type Mongo struct {
	// URI is the MongoDB connection string.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database name.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Redis holds the revocation list connection settings. An empty Address
// disables access token revocation.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Files holds file-system settings for uploaded files awaiting transfer to
// the media host.
type Files struct {
	// TempDir is the directory multipart uploads are written to.
	// Env: STORAGE_FILES_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigin is the allowed browser origin. Credentials are allowed.
	// Env: SERVER_CORS_ORIGIN
	CORSOrigin string `env:"CORS_ORIGIN"`

	// MaxUploadSize caps multipart request bodies, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds configuration for the media host integrations. Only the
// section matching Media.Driver is required.
type Adapter struct {
	Media      Media      `envPrefix:"MEDIA_"`
	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
	MinIO      MinIO      `envPrefix:"MINIO_"`
	S3         S3         `envPrefix:"S3_"`
}

// Media selects the media host.
type Media struct {
	// Driver is one of "cloudinary", "minio", "s3".
	// Env: ADAPTER_MEDIA_DRIVER
	Driver string `env:"DRIVER"`

	// Timeout bounds a single upload or delete call.
	// Env: ADAPTER_MEDIA_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Cloudinary holds the credentials of the Cloudinary upload API.
type Cloudinary struct {
	// Env: ADAPTER_CLOUDINARY_CLOUD_NAME
	CloudName string `env:"CLOUD_NAME" json:"cloud_name"`
	// Env: ADAPTER_CLOUDINARY_API_KEY
	APIKey string `env:"API_KEY" json:"api_key"`
	// Env: ADAPTER_CLOUDINARY_API_SECRET
	APISecret string `env:"API_SECRET" json:"api_secret"`
	// BaseURL defaults to https://api.cloudinary.com.
	// Env: ADAPTER_CLOUDINARY_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`
}

// MinIO holds the settings of an S3 compatible object store.
type MinIO struct {
	// Env: ADAPTER_MINIO_ENDPOINT
	Endpoint string `env:"ENDPOINT" json:"endpoint"`
	// Env: ADAPTER_MINIO_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	// Env: ADAPTER_MINIO_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
	// Env: ADAPTER_MINIO_BUCKET
	Bucket string `env:"BUCKET" json:"bucket"`
	// Env: ADAPTER_MINIO_USE_SSL
	UseSSL bool `env:"USE_SSL" json:"use_ssl"`
	// PublicURL prefixes object keys in returned asset URLs.
	// Env: ADAPTER_MINIO_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL" json:"public_url"`
}

// S3 holds the settings of an AWS S3 bucket.
type S3 struct {
	// Env: ADAPTER_S3_REGION
	Region string `env:"REGION" json:"region"`
	// Env: ADAPTER_S3_BUCKET
	Bucket string `env:"BUCKET" json:"bucket"`
	// Env: ADAPTER_S3_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	// Env: ADAPTER_S3_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
	// Endpoint overrides the AWS endpoint (e.g. LocalStack).
	// Env: ADAPTER_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT" json:"endpoint"`
	// PublicURL prefixes object keys in returned asset URLs.
	// Env: ADAPTER_S3_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL" json:"public_url"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval is the period of the database health probe.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is
//     loaded first and never overrides variables already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}
