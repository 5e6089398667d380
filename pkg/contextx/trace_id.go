package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// traceIDMaxLen ограничивает идентификатор, пришедший извне.
const traceIDMaxLen = 64

type TraceID string

type contextKeyTraceID struct{}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID принимает только непустые идентификаторы из [A-Za-z0-9._-].
func ParseTraceID(s string) (TraceID, bool) {
	if s == "" || len(s) > traceIDMaxLen {
		return "", false
	}

	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return "", false
		}
	}

	return TraceID(s), true
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}

// EnsureTraceID возвращает контекст с trace id, создавая новый при отсутствии.
func EnsureTraceID(ctx context.Context) (context.Context, TraceID) {
	if traceID, err := TraceIDFromContext(ctx); err == nil {
		return ctx, traceID
	}

	traceID := NewTraceID()

	return WithTraceID(ctx, traceID), traceID
}
