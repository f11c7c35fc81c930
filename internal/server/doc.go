// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It owns the HTTP and gRPC server lifecycles and the background workers:
// everything starts together, and a termination signal or the failure of
// any listener shuts the rest down gracefully.
package server
