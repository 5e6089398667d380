package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"deal_service/pkg/logx"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

type AsynqServer struct {
	RedisUsername   string
	RedisPassword   string
	RedisAddress    string
	RedisDB         int
	Concurrency     int
	ShutdownTimeout time.Duration
	// Logger receives asynq's own diagnostics; nil keeps the asynq default.
	Logger asynq.Logger
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	redisConnection := asynq.RedisClientOpt{
		Addr:     s.RedisAddress,
		Username: s.RedisUsername,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	}

	worker := asynq.NewServer(redisConnection, asynq.Config{
		BaseContext:     func() context.Context { return ctx },
		Queues:          queues,
		Concurrency:     s.Concurrency,
		ShutdownTimeout: s.ShutdownTimeout,
		Logger:          s.Logger,
		ErrorHandler:    asynq.ErrorHandlerFunc(logTaskError),
	})

	mux := asynq.NewServeMux()

	for _, h := range handlers {
		mux.HandleFunc(h.Pattern, h.Handle)
	}

	g.Go(func() error {
		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		return nil
	})
}

// logTaskError пишет неудачную попытку. После последней попытки asynq
// переносит задачу в archived.
func logTaskError(ctx context.Context, task *asynq.Task, err error) {
	retry, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	taskID, _ := asynq.GetTaskID(ctx)

	logger(ctx).Warn(
		"asynq task failed",
		slog.String(logx.FieldTaskID, taskID),
		slog.String("task-type", task.Type()),
		slog.Int("retry", retry),
		slog.Int("max-retry", maxRetry),
		slog.Bool("archived", retry >= maxRetry),
		logx.Error(err),
	)
}
