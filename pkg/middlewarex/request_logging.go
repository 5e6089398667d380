package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"deal_service/pkg/logx"
)

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// у GET и DELETE тела нет, multipart не пишем целиком
			dumpBody := r.ContentLength != 0 &&
				!strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(truncate(dump, logFieldMaxLen)))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
