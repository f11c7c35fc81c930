// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tubehub/internal/logger"
	"github.com/MKhiriev/go-tubehub/internal/metrics"
	"github.com/MKhiriev/go-tubehub/internal/service"
)

const defaultHealthCheckInterval = 15 * time.Second

// HealthProbe periodically checks the database and publishes the result to
// the tubehub_database_up gauge and to every reporter.
type HealthProbe struct {
	appInfo   service.AppInfoService
	interval  time.Duration
	reporters []StatusReporter

	// healthy is nil until the first probe.
	healthy *bool

	logger *logger.Logger
}

func NewHealthProbe(appInfo service.AppInfoService, interval time.Duration, logger *logger.Logger, reporters ...StatusReporter) *HealthProbe {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}

	return &HealthProbe{
		appInfo:   appInfo,
		interval:  interval,
		reporters: reporters,
		logger:    logger,
	}
}

// Run probes once immediately, then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.probe(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Msg("health probe stopped")
			return
		case <-ticker.C:
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	_, err := p.appInfo.HealthCheck(checkCtx)
	if ctx.Err() != nil {
		return
	}
	ok := err == nil

	metrics.SetDatabaseUp(ok)
	for _, report := range p.reporters {
		report(ok)
	}

	if p.healthy != nil && *p.healthy == ok {
		return
	}
	p.healthy = &ok

	if ok {
		p.logger.Info().Msg("database is reachable")
	} else {
		p.logger.Warn().Err(err).Msg("database is unreachable")
	}
}
