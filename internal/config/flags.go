// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args into a fresh config.
//
// Flags:
//
//	-a                     server address in format [host]:[port]
//	-grpc-address          grpc health server address in format [host]:[port]
//	-m                     MongoDB connection URI
//	-db                    MongoDB database name
//	-redis                 Redis address
//	-temp-dir              directory for uploads awaiting transfer
//	-c/-config             json file path with configs
//	-access-token-secret   access token signing key
//	-refresh-token-secret  refresh token signing key
//	-access-token-expiry   access token lifetime (e.g., "24h")
//	-refresh-token-expiry  refresh token lifetime (e.g., "240h")
//	-password-hash-key     password pepper
//	-cors-origin           allowed CORS origin
//	-media-driver          cloudinary | minio | s3
//	-request-timeout       request timeout (e.g., "30s", "1m")
//	-log-level             log level
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var mongoURI, mongoDatabase string
	var redisAddress string
	var tempDir string
	var jsonConfigPath string
	var accessTokenSecret, refreshTokenSecret string
	var accessTokenExpiry, refreshTokenExpiry time.Duration
	var passwordHashKey string
	var corsOrigin string
	var mediaDriver string
	var requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&mongoURI, "m", "", "MongoDB URI")
	fs.StringVar(&mongoDatabase, "db", "", "MongoDB database name")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&tempDir, "temp-dir", "", "Temporary upload directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessTokenSecret, "access-token-secret", "", "Access token signing key")
	fs.StringVar(&refreshTokenSecret, "refresh-token-secret", "", "Refresh token signing key")
	fs.DurationVar(&accessTokenExpiry, "access-token-expiry", 0, "Access token lifetime (e.g., 24h)")
	fs.DurationVar(&refreshTokenExpiry, "refresh-token-expiry", 0, "Refresh token lifetime (e.g., 240h)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origin")
	fs.StringVar(&mediaDriver, "media-driver", "", "Media driver: cloudinary, minio or s3")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			AccessTokenSecret:  accessTokenSecret,
			AccessTokenExpiry:  accessTokenExpiry,
			RefreshTokenSecret: refreshTokenSecret,
			RefreshTokenExpiry: refreshTokenExpiry,
			PasswordHashKey:    passwordHashKey,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			Redis: Redis{
				Address: redisAddress,
			},
			Files: Files{
				TempDir: tempDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigin:     corsOrigin,
		},
		Adapter: Adapter{
			Media: Media{Driver: mediaDriver},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
