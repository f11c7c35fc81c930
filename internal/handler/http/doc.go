// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the user service.
//
// Routes live under /api/v1/user. Every response, including errors, is a
// JSON envelope (see [models.APIResponse] and [models.APIError]). Tracing,
// access logging, metrics, compression, CORS and authentication are applied
// here before requests reach the service layer.
package http
