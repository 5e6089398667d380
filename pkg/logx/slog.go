package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewLogger builds the process-wide console logger.
func NewLogger(w io.Writer, level slog.Level, appName, appVersion string) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	})

	return slog.New(handler).With(
		slog.String(FieldAppName, appName),
		slog.String(FieldAppVersion, appVersion),
	)
}
