package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_service/pkg/contextx"
	"deal_service/pkg/httpx"
	"deal_service/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Reuses valid header", incoming: "trace-42", keep: true},
		{name: "Generates when missing", incoming: "", keep: false},
		{name: "Replaces invalid header", incoming: "bad id\r\n", keep: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				var err error
				seen, err = contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)
			}))

			req := httptest.NewRequest(http.MethodGet, "/deals", nil)
			if tc.incoming != "" {
				req.Header.Set(httpx.HeaderTraceID, tc.incoming)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), rec.Header().Get(httpx.HeaderTraceID))

			if tc.keep {
				rq.Equal(tc.incoming, seen.String())
			} else {
				rq.NotEqual(tc.incoming, seen.String())
			}
		})
	}
}

func TestLoggerWithoutTraceID(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, err := contextx.LoggerFromContext(r.Context())
		rq.NoError(err)

		_, err = contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/deals", nil))
}

func TestRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	t.Run("Fallback", func(t *testing.T) {
		rq := require.New(t)

		rec := httptest.NewRecorder()
		middlewarex.Recovery(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		rq.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Nil fallback", func(t *testing.T) {
		rq := require.New(t)

		rec := httptest.NewRecorder()
		middlewarex.Recovery(nil)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		rq.Equal(http.StatusInternalServerError, rec.Code)
	})

	t.Run("Abort handler", func(t *testing.T) {
		rq := require.New(t)

		aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		})

		rq.PanicsWithValue(http.ErrAbortHandler, func() {
			middlewarex.Recovery(nil)(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
