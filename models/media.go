// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"strings"
)

// MediaAsset describes a file stored on the media host.
type MediaAsset struct {
	// URL is the public address of the asset.
	URL string `json:"url"`

	// PublicID is the host-side identifier used to delete the asset.
	PublicID string `json:"public_id"`
}

// PublicIDFromURL derives the host-side identifier from an asset URL:
// the last path segment without its extension. Returns "" for an empty URL.
func PublicIDFromURL(assetURL string) string {
	if assetURL == "" {
		return ""
	}

	// strip query and fragment
	if i := strings.IndexAny(assetURL, "?#"); i >= 0 {
		assetURL = assetURL[:i]
	}

	base := path.Base(assetURL)
	if base == "." || base == "/" {
		return ""
	}

	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}

	return base
}
