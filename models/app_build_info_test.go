// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	b := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	assert.Equal(t, "1.2.0", b.BuildVersion())
	assert.Equal(t, "1.2.0", b.Version())
	assert.Equal(t, "2026-10-01", b.BuildDate())
	assert.Equal(t, "abc123", b.BuildCommit())
}

func TestAppBuildInfo_VersionFallback(t *testing.T) {
	assert.Equal(t, "N/A", NewAppBuildInfo("", "", "").Version())
}
