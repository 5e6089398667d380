package middlewarex

import (
	"log/slog"
	"net/http"

	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

// Logger кладёт в контекст логгер с полями запроса. Если TraceID не
// отработал раньше, идентификатор создаётся здесь.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, traceID := contextx.EnsureTraceID(r.Context())

		ctx = contextx.WithLogger(
			ctx,
			logger(ctx).With(
				logx.Stringer(logx.FieldTraceID, traceID),
				logx.Stringer(logx.FieldURL, r.URL),
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldIP, r.RemoteAddr),
				slog.String(logx.FieldUserAgent, r.UserAgent()),
			),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
