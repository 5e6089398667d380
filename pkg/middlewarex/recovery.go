package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"deal_service/pkg/logx"
)

// Recovery перехватывает панику обработчика и отвечает через onPanic.
// При nil onPanic клиент получает пустой ответ 500.
// http.ErrAbortHandler пробрасывается дальше: им net/http обрывает соединение.
func Recovery(onPanic http.HandlerFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger(r.Context()).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				if onPanic == nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				onPanic(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
