package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"deal_service/internal/infrastructure/events"
	"deal_service/pkg/application/modules"
	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

const (
	defaultDedupTTL = time.Hour

	resultOK        = "ok"
	resultDuplicate = "duplicate"
	resultMalformed = "malformed"
	resultError     = "error"
)

//go:generate moq -rm -out notifier_mock.gen.go . Notifier

type Notifier interface {
	NotifyDeal(ctx context.Context, eventType string, dealID int64) error
}

type DealEventsOptions struct {
	Namespace string
	// DedupTTL — сколько помнить обработанные задачи.
	DedupTTL time.Duration
	// TaskID достаёт идентификатор задачи из контекста обработчика.
	TaskID func(ctx context.Context) (string, bool)
}

// DealEvents обрабатывает события сделок из очереди. Повторную доставку
// той же задачи распознаёт по её id.
type DealEvents struct {
	notifier  Notifier
	processed *cache.Cache
	consumed  *prometheus.CounterVec
	taskID    func(ctx context.Context) (string, bool)
}

func NewDealEvents(notifier Notifier, registerer prometheus.Registerer, opts DealEventsOptions) *DealEvents {
	if opts.DedupTTL <= 0 {
		opts.DedupTTL = defaultDedupTTL
	}

	if opts.TaskID == nil {
		opts.TaskID = asynq.GetTaskID
	}

	return &DealEvents{
		notifier:  notifier,
		processed: cache.New(opts.DedupTTL, 2*opts.DedupTTL),
		consumed: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "deal_events_consumed_total",
			Help:      "Deal events taken from the task queue.",
		}, []string{"type", "result"}),
		taskID: opts.TaskID,
	}
}

// Handlers возвращает обработчики для всех типов событий сделок.
func (w *DealEvents) Handlers() []modules.AsynqHandler {
	handlers := make([]modules.AsynqHandler, 0, len(events.Types()))
	for _, t := range events.Types() {
		handlers = append(handlers, modules.AsynqHandler{Pattern: t, Handle: w.Handle})
	}

	return handlers
}

func (w *DealEvents) Handle(ctx context.Context, task *asynq.Task) error {
	ctx, traceID := contextx.EnsureTraceID(ctx)

	log := logger(ctx).With(
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.String(logx.FieldEventType, task.Type()),
	)

	payload, err := events.ParseDealPayload(task)
	if err != nil {
		w.consumed.WithLabelValues(task.Type(), resultMalformed).Inc()
		log.Error("malformed deal event", logx.Error(err))

		return fmt.Errorf("events.ParseDealPayload: %w: %w", err, asynq.SkipRetry)
	}

	log = log.With(slog.Int64(logx.FieldDealID, payload.DealID))

	taskID, hasID := w.taskID(ctx)
	if hasID {
		log = log.With(slog.String(logx.FieldTaskID, taskID))

		if _, seen := w.processed.Get(taskID); seen {
			w.consumed.WithLabelValues(task.Type(), resultDuplicate).Inc()
			log.Info("deal event already processed")

			return nil
		}
	}

	if err := w.notifier.NotifyDeal(contextx.WithLogger(ctx, log), task.Type(), payload.DealID); err != nil {
		w.consumed.WithLabelValues(task.Type(), resultError).Inc()
		log.Error("failed to notify about deal event", logx.Error(err))

		return fmt.Errorf("notifier.NotifyDeal: %w", err)
	}

	if hasID {
		w.processed.SetDefault(taskID, struct{}{})
	}

	w.consumed.WithLabelValues(task.Type(), resultOK).Inc()
	log.Info("deal event processed")

	return nil
}
