package connectors

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hibiken/asynq"

	"deal_service/pkg/logx"
)

// AsynqClient lazily builds the task producer shared by the HTTP handlers.
type AsynqClient struct {
	value    *asynq.Client
	Username string
	Password string
	Address  string
	DB       int
	init     sync.Once
}

func (a *AsynqClient) Client(ctx context.Context) *asynq.Client {
	a.init.Do(func() {
		a.value = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     a.Address,
			Username: a.Username,
			Password: a.Password,
			DB:       a.DB,
		})

		logger(ctx).Info(
			"asynq client created",
			slog.String("address", a.Address),
			slog.Int("database", a.DB),
		)
	})

	return a.value
}

func (a *AsynqClient) Close(ctx context.Context) {
	if a.value == nil {
		return
	}

	if err := a.value.Close(); err != nil {
		logger(ctx).Error("asynqClient.Close", logx.Error(err))
	}

	logger(ctx).Info("asynq client closed", slog.String("address", a.Address))
}
