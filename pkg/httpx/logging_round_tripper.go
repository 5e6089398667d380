package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

const (
	fieldUpstream = "upstream"

	// HeaderTraceID связывает логи входящего запроса и исходящих вызовов.
	HeaderTraceID = "X-Trace-Id"
)

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper пишет в лог исходящие запросы и ответы. Дампы по
// умолчанию проходят через logx.SensitiveDataMasker, так что токен бота в
// пути запроса не попадает в лог. Trace id из контекста передаётся дальше
// в заголовке X-Trace-Id.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
	upstream            string
}

func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewSensitiveDataMasker(),
		logFieldMaxLen:      0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger(ctx).With(slog.String(logx.FieldRequestID, xid.New().String()))

	if rt.upstream != "" {
		log = log.With(slog.String(fieldUpstream, rt.upstream))
	}

	if traceID, err := contextx.TraceIDFromContext(ctx); err == nil && req.Header.Get(HeaderTraceID) == "" {
		// RoundTripper не должен менять исходный запрос
		req = req.Clone(ctx)
		req.Header.Set(HeaderTraceID, traceID.String())
	}

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldRequestBody, rt.mask(reqBytes)),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Error(
			"round trip failed",
			logx.Error(err),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.mask(respBytes)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) mask(dump []byte) string {
	if rt.logFieldMaxLen > 0 && len(dump) > rt.logFieldMaxLen {
		dump = dump[:rt.logFieldMaxLen]
	}

	return string(rt.sensitiveDataMasker.Mask(dump))
}
