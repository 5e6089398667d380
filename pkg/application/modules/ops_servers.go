package modules

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"deal_service/pkg/metrics"
	"deal_service/pkg/probe"
)

// ProbeServer отдаёт liveness и readiness. Пустой ListenAddress отключает модуль.
type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Checks        map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")
		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Checks,
	)

	checks := lo.Keys(p.Checks)
	slices.Sort(checks)

	logger(ctx).Info("readiness checks registered", slog.Any("checks", checks))

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}

// MetricServer отдаёт метрики Prometheus. Пустой ListenAddress отключает модуль.
type MetricServer struct {
	ListenAddress string
	Gatherer      prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.ListenAddress == "" {
		logger(ctx).Info("metric server disabled")
		return
	}

	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		m.Gatherer,
	)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
