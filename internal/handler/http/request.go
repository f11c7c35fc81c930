// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/utils"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to disk until the form is removed.
const multipartMemory = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := utils.DecodeJSON(w, r, dst, utils.JSONBodyLimit)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
}

// parseMultipart caps the body at the configured upload size and parses it.
// A request that is not multipart is accepted; its file parts are absent.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	if r.ContentLength > h.maxUploadSize {
		return errUploadTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %w", errUploadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", errInvalidForm, err)
}

// releaseMultipart removes the spilled parts of a parsed form.
func releaseMultipart(r *http.Request) {
	if r.MultipartForm == nil {
		return
	}
	if err := r.MultipartForm.RemoveAll(); err != nil {
		logger.FromRequest(r).Err(err).Msg("error removing multipart files")
	}
}

// stageFile copies the file part named field into the temp directory.
// Returns errNoFile when the part is absent.
func (h *Handler) stageFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", errNoFile
		}
		return "", fmt.Errorf("%w: %w", errInvalidForm, err)
	}
	defer file.Close()

	return h.services.MediaService.Stage(r.Context(), file, header.Filename)
}
