// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/config"
	"github.com/MKhiriev/go-tubehub/internal/handler"
	myGRPC "github.com/MKhiriev/go-tubehub/internal/handler/grpc"
	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/service"
	"github.com/MKhiriev/go-tubehub/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ─── NewServer ───────────────────────────────────────────────────────────────

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BuildsConfiguredServers(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	require.NotNil(t, srv.gRPCServer)
	assert.Equal(t, 5*time.Second, srv.httpServer.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
}

// ─── run ─────────────────────────────────────────────────────────────────────

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	w := &blockingWorker{started: make(chan struct{})}
	s, err := NewServer(handlers, workers.NewWorkers(w), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.(*server).run(ctx) }()

	<-w.started
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "256.0.0.1:bad"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	assert.ErrorContains(t, err, "ListenAndServe")
}

// ─── transports ──────────────────────────────────────────────────────────────

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.RunServer())
}

func TestGRPCServer_ServesHealth(t *testing.T) {
	h := myGRPC.NewHandler(logger.Nop())
	h.SetServing(true)
	srv := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.RunServer() }()

	require.Eventually(t, func() bool { return srv.addr() != nil }, time.Second, 5*time.Millisecond)

	conn, err := grpc.NewClient(srv.addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}

// blockingWorker signals start and blocks until ctx is done.
type blockingWorker struct {
	started chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
}
