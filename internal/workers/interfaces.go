// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the application's background loops alongside the
// transport servers.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// StatusReporter receives the outcome of every health probe.
type StatusReporter func(ok bool)
