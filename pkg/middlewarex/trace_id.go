package middlewarex

import (
	"net/http"

	"deal_service/pkg/contextx"
	"deal_service/pkg/httpx"
)

// TraceID берёт идентификатор из заголовка запроса, если он корректен,
// иначе выдаёт новый. Итоговое значение возвращается в ответе.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(httpx.HeaderTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(httpx.HeaderTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
