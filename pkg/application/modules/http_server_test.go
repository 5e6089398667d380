package modules_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"deal_service/pkg/application/modules"
)

func TestHTTPServerGracefulShutdown(t *testing.T) {
	rq := require.New(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	rq.NoError(err)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}),
		ReadHeaderTimeout: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: time.Second, Listener: listener}.Run(gctx, g, srv)

	resp, err := http.Get("http://" + listener.Addr().String() + "/deals") //nolint:noctx
	rq.NoError(err)
	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.NoError(resp.Body.Close())
	rq.Equal("ok", string(body))

	cancel()
	rq.NoError(g.Wait())
}

func TestHTTPServerListenError(t *testing.T) {
	rq := require.New(t)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	rq.NoError(err)
	t.Cleanup(func() { busy.Close() })

	g, ctx := errgroup.WithContext(context.Background())

	modules.HTTPServer{ShutdownTimeout: time.Second}.Run(ctx, g, &http.Server{
		Addr:              busy.Addr().String(),
		ReadHeaderTimeout: time.Second,
	})

	rq.ErrorContains(g.Wait(), "net.Listen")
}
