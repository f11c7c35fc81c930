// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/utils"
	"github.com/MKhiriev/go-tubehub/models"
)

// cloudinaryUploadResult is the subset of the upload response the service uses.
type cloudinaryUploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type cloudinaryDestroyResult struct {
	Result string `json:"result"`
}

type cloudinaryStorage struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string

	now    func() time.Time
	logger *logger.Logger
}

// NewCloudinaryStorage constructs a [MediaStorage] backed by the Cloudinary
// upload API. Requests are signed with the API secret; the secret itself is
// never sent.
//
// Returns an error if cfg.BaseURL cannot be parsed.
func NewCloudinaryStorage(cfg config.Cloudinary, timeout time.Duration, logger *logger.Logger) (MediaStorage, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary base url: %w", err)
	}

	return &cloudinaryStorage{
		client:    utils.NewHTTPClient(baseURL, timeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaStorage]. The resource type is detected by the host.
func (c *cloudinaryStorage) Upload(ctx context.Context, localPath string) (models.MediaAsset, error) {
	if localPath == "" {
		return models.MediaAsset{}, ErrEmptyPath
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	form := c.signedForm(params)

	var result cloudinaryUploadResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(form).
		SetResult(&result).
		Post(fmt.Sprintf("/v1_1/%s/auto/upload", c.cloudName))
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("cloudinary upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaAsset{}, err
	}

	assetURL := result.SecureURL
	if assetURL == "" {
		assetURL = result.URL
	}
	if assetURL == "" {
		return models.MediaAsset{}, ErrEmptyResponse
	}

	publicID := result.PublicID
	if publicID == "" {
		publicID = models.PublicIDFromURL(assetURL)
	}

	c.logger.Debug().Str("func", "cloudinaryStorage.Upload").Str("public_id", publicID).Msg("file uploaded")
	return models.MediaAsset{URL: assetURL, PublicID: publicID}, nil
}

// Delete implements [MediaStorage]. A "not found" result from the host is
// treated as success.
func (c *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return ErrEmptyPublicID
	}

	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}

	var result cloudinaryDestroyResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(c.signedForm(params)).
		SetResult(&result).
		Post(fmt.Sprintf("/v1_1/%s/image/destroy", c.cloudName))
	if err != nil {
		return fmt.Errorf("cloudinary destroy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	switch result.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy %q: unexpected result %q", publicID, result.Result)
	}
}

// signedForm returns params extended with api_key and signature.
func (c *cloudinaryStorage) signedForm(params map[string]string) map[string]string {
	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = c.apiKey
	form["signature"] = signParams(params, c.apiSecret)
	return form
}

// signParams computes the Cloudinary request signature: the SHA-1 of the
// parameters sorted by name, joined as k=v pairs with "&", followed by the
// API secret.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
