package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"

	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	readinessCheckTimeout       = 2 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Check reports whether a dependency is usable. A nil error means ready.
type Check func(ctx context.Context) error

type Server struct {
	listenAddress string
	state         []byte
	checks        map[string]Check
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type readiness struct {
	Options
	Failed map[string]string `json:"failed,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
	checks map[string]Check,
) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		listenAddress: listenAddress,
		state:         stateJSON,
		checks:        checks,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessCheckTimeout)
	defer cancel()

	failed := s.runChecks(ctx)
	if len(failed) == 0 {
		w.WriteHeader(http.StatusOK)
		w.Write(s.state) //nolint:errcheck

		return
	}

	var options Options
	_ = json.Unmarshal(s.state, &options) //nolint:errcheck

	body, _ := json.Marshal(readiness{Options: options, Failed: failed}) //nolint:errcheck,errchkjson

	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write(body) //nolint:errcheck
}

func (s Server) runChecks(ctx context.Context) map[string]string {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}

	sort.Strings(names)

	failed := make(map[string]string)

	for _, name := range names {
		if err := s.checks[name](ctx); err != nil {
			logger(ctx).Warn("readiness check failed", slog.String("check", name), logx.Error(err))
			failed[name] = err.Error()
		}
	}

	return failed
}
