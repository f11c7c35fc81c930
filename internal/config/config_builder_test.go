// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredConfig carries the settings that have no defaults.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			AccessTokenSecret:  "access-secret",
			RefreshTokenSecret: "refresh-secret",
		},
		Storage: Storage{
			Mongo: Mongo{URI: "mongodb://localhost:27017"},
		},
		Adapter: Adapter{
			Cloudinary: Cloudinary{CloudName: "demo", APIKey: "key", APISecret: "secret"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsAndRequired verifies that defaults fill every optional
// field once the required ones are supplied.
func TestBuild_DefaultsAndRequired(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, 240*time.Hour, cfg.Auth.RefreshTokenExpiry)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "videotube", cfg.Storage.Mongo.Database)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadSize)
	assert.Equal(t, MediaDriverCloudinary, cfg.Adapter.Media.Driver)
	assert.Equal(t, "https://api.cloudinary.com", cfg.Adapter.Cloudinary.BaseURL)
	assert.Equal(t, "access-secret", cfg.Auth.AccessTokenSecret)
}

// TestBuild_LaterSourceWins verifies that later non-zero fields override
// earlier ones and zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsVariables verifies that variables from the .env file
// are visible to withEnv and that the process environment takes precedence.
func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"STORAGE_MONGO_DATABASE=fromdotenv\nAPP_VERSION=dotenv-version\n"), 0o600))

	// registers cleanup for the variables godotenv is about to set
	t.Setenv("STORAGE_MONGO_DATABASE", "")
	require.NoError(t, os.Unsetenv("STORAGE_MONGO_DATABASE"))
	t.Setenv("APP_VERSION", "process-version")

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	assert.Equal(t, "fromdotenv", b.configs[0].Storage.Mongo.Database)
	assert.Equal(t, "process-version", b.configs[0].App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// collected in b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "ten")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlagSet ───────────────────────────────────────────────────────────────

// TestWithFlagSet_AppendsParsedFlags verifies that parsed flags become a
// config layer.
func TestWithFlagSet_AppendsParsedFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	b := newConfigBuilder().withFlagSet(fs, []string{"-a", "localhost:8080", "-m", "mongodb://db"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:8080", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "mongodb://db", b.configs[0].Storage.Mongo.URI)
}

// TestWithFlagSet_UnknownFlag verifies that an unknown flag sets b.err.
func TestWithFlagSet_UnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	b := newConfigBuilder().withFlagSet(fs, []string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
