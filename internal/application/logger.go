package application

import (
	"log/slog"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deal_service/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// newAsynqLogger отдаёт asynq собственный zap-логгер: asynq пишет без
// контекста и ждёт printf-подобный интерфейс.
func newAsynqLogger(level slog.Level) asynq.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Named("asynq").Sugar()
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
