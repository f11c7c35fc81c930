// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8000},
			expected: ":8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{"localhost", "localhost:8080", false, "localhost", 8080},
		{"ipv4", "127.0.0.1:9090", false, "127.0.0.1", 9090},
		{"all interfaces", ":8000", false, "", 8000},
		{"missing port", "localhost", true, "", 0},
		{"non numeric port", "localhost:abc", true, "", 0},
		{"zero port", "localhost:0", true, "", 0},
		{"port out of range", "localhost:70000", true, "", 0},
		{"bad host", "not-an-ip:8080", true, "", 0},
		{"too many colons", "a:b:c", true, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-m", "mongodb://localhost:27017",
		"-db", "tube",
		"-redis", "localhost:6379",
		"-temp-dir", "/tmp/up",
		"-config", "/etc/tube.json",
		"-access-token-secret", "access",
		"-refresh-token-secret", "refresh",
		"-access-token-expiry", "2h",
		"-refresh-token-expiry", "72h",
		"-password-hash-key", "pepper",
		"-cors-origin", "http://localhost:5173",
		"-media-driver", "s3",
		"-request-timeout", "15s",
		"-log-level", "debug",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:5173", cfg.Server.CORSOrigin)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "tube", cfg.Storage.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "/tmp/up", cfg.Storage.Files.TempDir)

	assert.Equal(t, "access", cfg.Auth.AccessTokenSecret)
	assert.Equal(t, "refresh", cfg.Auth.RefreshTokenSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, 72*time.Hour, cfg.Auth.RefreshTokenExpiry)
	assert.Equal(t, "pepper", cfg.Auth.PasswordHashKey)

	assert.Equal(t, MediaDriverS3, cfg.Adapter.Media.Driver)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/etc/tube.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.Mongo.URI)
	assert.Zero(t, cfg.Auth.AccessTokenExpiry)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nohostport"})
	assert.Error(t, err)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-access-token-expiry", "soon"})
	assert.Error(t, err)
}
