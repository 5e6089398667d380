package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"deal_service/pkg/contextx"
	"deal_service/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	resultOK    = "ok"
	resultError = "error"
)

//go:generate moq -rm -out enqueuer_mock.gen.go . Enqueuer

// Enqueuer — часть asynq.Client, нужная эмиттеру.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Options struct {
	Queue          string
	MaxRetry       int
	EnqueueTimeout time.Duration
	Namespace      string
}

// Emitter ставит события сделок в очередь asynq. Ошибки постановки
// только логируются: вызывающий код их не видит.
type Emitter struct {
	client  Enqueuer
	opts    Options
	emitted *prometheus.CounterVec
}

// NewEmitter создаёт эмиттер. registerer может быть nil, тогда счётчики
// нигде не регистрируются.
func NewEmitter(client Enqueuer, registerer prometheus.Registerer, opts Options) *Emitter {
	if opts.Queue == "" {
		opts.Queue = "default"
	}

	if opts.EnqueueTimeout <= 0 {
		opts.EnqueueTimeout = 5 * time.Second //nolint:mnd
	}

	return &Emitter{
		client: client,
		opts:   opts,
		emitted: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "deal_events_emitted_total",
			Help:      "Deal events handed to the task queue.",
		}, []string{"type", "result"}),
	}
}

func (e *Emitter) DealCreated(ctx context.Context, dealID int64) {
	e.emit(ctx, TypeDealCreated, dealID)
}

func (e *Emitter) DealUpdated(ctx context.Context, dealID int64) {
	e.emit(ctx, TypeDealUpdated, dealID)
}

func (e *Emitter) DealDeleted(ctx context.Context, dealID int64) {
	e.emit(ctx, TypeDealDeleted, dealID)
}

func (e *Emitter) emit(ctx context.Context, typename string, dealID int64) {
	log := logger(ctx).With(
		slog.String(logx.FieldEventType, typename),
		slog.Int64(logx.FieldDealID, dealID),
	)

	task, err := NewDealTask(typename, dealID)
	if err != nil {
		e.emitted.WithLabelValues(typename, resultError).Inc()
		log.Error("failed to build task", logx.Error(err))

		return
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.EnqueueTimeout)
	defer cancel()

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(e.opts.Queue),
		asynq.MaxRetry(e.opts.MaxRetry),
	)
	if err != nil {
		e.emitted.WithLabelValues(typename, resultError).Inc()
		log.Error("failed to enqueue event", logx.Error(err))

		return
	}

	e.emitted.WithLabelValues(typename, resultOK).Inc()
	log.Debug("event enqueued", slog.String(logx.FieldTaskID, info.ID), slog.String(logx.FieldQueue, info.Queue))
}
