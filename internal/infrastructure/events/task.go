package events

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Типы задач, которые получает воркер.
const (
	TypeDealCreated = "deal:created"
	TypeDealUpdated = "deal:updated"
	TypeDealDeleted = "deal:deleted"
)

// Types перечисляет все типы событий сделки.
func Types() []string {
	return []string{TypeDealCreated, TypeDealUpdated, TypeDealDeleted}
}

// DealPayload — тело задачи. Несёт только идентификатор сделки.
type DealPayload struct {
	DealID int64 `json:"dealId"`
}

func NewDealTask(typename string, dealID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(DealPayload{DealID: dealID})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(typename, payload), nil
}

// ParseDealPayload разбирает тело задачи. Идентификатор обязан быть положительным.
func ParseDealPayload(task *asynq.Task) (DealPayload, error) {
	var p DealPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return DealPayload{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if p.DealID <= 0 {
		return DealPayload{}, fmt.Errorf("invalid deal id %d", p.DealID)
	}

	return p, nil
}
