package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"deal_service/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "app-1",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"app-1","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "app-2",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"app-2","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(
				tc.listenAddress,
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
				map[string]probe.Check{
					"postgres": func(context.Context) error { return nil },
				},
			)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestServerReadyChecks(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		checks     map[string]probe.Check
		statusCode int
		body       string
	}{
		{
			name:       "No checks",
			statusCode: http.StatusOK,
			body:       `{"name":"deals","version":"v1"}`,
		},
		{
			name: "All checks pass",
			checks: map[string]probe.Check{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			statusCode: http.StatusOK,
			body:       `{"name":"deals","version":"v1"}`,
		},
		{
			name: "Redis is down",
			checks: map[string]probe.Check{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("connection refused") },
			},
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"deals","version":"v1","failed":{"redis":"connection refused"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			probeServer := probe.NewServer(":0", probe.Options{Name: "deals", Version: "v1"}, tc.checks)

			rec := httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.JSONEq(tc.body, rec.Body.String())
		})
	}
}
