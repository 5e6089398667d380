package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"deal_service/internal/application"
	"deal_service/internal/config"
	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogLevel, cfg.App.Name, cfg.App.Version)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
