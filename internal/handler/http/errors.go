// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	errInvalidJSON    = errors.New("invalid JSON body")
	errInvalidForm    = errors.New("invalid multipart form")
	errUploadTooLarge = errors.New("upload exceeds size limit")

	// errNoFile is returned when the expected multipart file part is absent.
	errNoFile = errors.New("no file in form")
)
