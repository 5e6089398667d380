package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"deal_service/pkg/logx"
)

// HTTPServer модуль, ответственный за запуск и остановку HTTP-сервера
// (graceful shutdown).
type HTTPServer struct {
	ShutdownTimeout time.Duration
	// Listener, если задан, используется вместо httpServer.Addr.
	Listener net.Listener
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	g.Go(func() error {
		listener := h.Listener
		if listener == nil {
			var err error

			listener, err = net.Listen("tcp", httpServer.Addr)
			if err != nil {
				return fmt.Errorf("net.Listen: %w", err)
			}
		}

		address := slog.String("address", listener.Addr().String())

		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger(ctx).Error("server.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", address)

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		logger(ctx).Info("http server stopped", address)

		return nil
	})
}
