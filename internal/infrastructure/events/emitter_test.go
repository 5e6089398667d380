package events_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"deal_service/internal/infrastructure/events"
)

func TestEmitter(t *testing.T) {
	rq := require.New(t)

	enqueuer := &events.EnqueuerMock{
		EnqueueContextFunc: func(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
			return &asynq.TaskInfo{ID: "task-1", Queue: "deals", Type: task.Type()}, nil
		},
	}

	registry := prometheus.NewRegistry()
	emitter := events.NewEmitter(enqueuer, registry, events.Options{Queue: "deals", MaxRetry: 3})

	ctx := context.Background()
	emitter.DealCreated(ctx, 1)
	emitter.DealUpdated(ctx, 2)
	emitter.DealDeleted(ctx, 3)

	calls := enqueuer.EnqueueContextCalls()
	rq.Len(calls, 3)

	testCases := []struct {
		typename string
		payload  string
	}{
		{typename: events.TypeDealCreated, payload: `{"dealId":1}`},
		{typename: events.TypeDealUpdated, payload: `{"dealId":2}`},
		{typename: events.TypeDealDeleted, payload: `{"dealId":3}`},
	}

	for i, tc := range testCases {
		rq.Equal(tc.typename, calls[i].Task.Type())
		rq.JSONEq(tc.payload, string(calls[i].Task.Payload()))
		rq.Len(calls[i].Opts, 2)

		_, hasDeadline := calls[i].Ctx.Deadline()
		rq.True(hasDeadline)
	}

	rq.Equal(3, testutil.CollectAndCount(registry, "deal_events_emitted_total"))
}

func TestEmitterSwallowsErrors(t *testing.T) {
	rq := require.New(t)

	enqueuer := &events.EnqueuerMock{
		EnqueueContextFunc: func(context.Context, *asynq.Task, ...asynq.Option) (*asynq.TaskInfo, error) {
			return nil, errors.New("redis is down")
		},
	}

	registry := prometheus.NewRegistry()
	emitter := events.NewEmitter(enqueuer, registry, events.Options{})

	rq.NotPanics(func() {
		emitter.DealCreated(context.Background(), 10)
	})

	rq.Len(enqueuer.EnqueueContextCalls(), 1)

	expected := `
		# HELP deal_events_emitted_total Deal events handed to the task queue.
		# TYPE deal_events_emitted_total counter
		deal_events_emitted_total{result="error",type="deal:created"} 1
	`
	rq.NoError(testutil.GatherAndCompare(registry, strings.NewReader(expected), "deal_events_emitted_total"))
}

func TestParseDealPayload(t *testing.T) {
	rq := require.New(t)

	task, err := events.NewDealTask(events.TypeDealUpdated, 42)
	rq.NoError(err)

	payload, err := events.ParseDealPayload(task)
	rq.NoError(err)
	rq.Equal(int64(42), payload.DealID)

	_, err = events.ParseDealPayload(asynq.NewTask(events.TypeDealUpdated, []byte(`{"dealId":0}`)))
	rq.Error(err)

	_, err = events.ParseDealPayload(asynq.NewTask(events.TypeDealUpdated, []byte(`not json`)))
	rq.Error(err)
}
