package service

import (
	"context"
	"fmt"
	"log/slog"

	"deal_service/internal/domain/entity"
	"deal_service/pkg/logx"
)

//go:generate moq -rm -out deal_mock.gen.go . DealRepository EventEmitter

type DealRepository interface {
	Create(ctx context.Context, in entity.DealCreate) (*entity.Deal, error)
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	List(ctx context.Context) ([]*entity.Deal, error)
	Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventEmitter ставит уведомления об изменении сделок в очередь.
// Результат постановки вызывающему не возвращается.
type EventEmitter interface {
	DealCreated(ctx context.Context, dealID int64)
	DealUpdated(ctx context.Context, dealID int64)
	DealDeleted(ctx context.Context, dealID int64)
}

type DealService struct {
	repo    DealRepository
	emitter EventEmitter
}

func NewDealService(repo DealRepository, emitter EventEmitter) *DealService {
	return &DealService{
		repo:    repo,
		emitter: emitter,
	}
}

func (s *DealService) Create(ctx context.Context, in entity.DealCreate) (*entity.Deal, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	deal, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("repo.Create: %w", err)
	}

	logger(ctx).Info("deal created", slog.Int64(logx.FieldDealID, deal.ID))

	s.emitter.DealCreated(detach(ctx), deal.ID)

	return deal, nil
}

func (s *DealService) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	return deal, nil
}

func (s *DealService) List(ctx context.Context) ([]*entity.Deal, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return deals, nil
}

func (s *DealService) Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	deal, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("repo.Update: %w", err)
	}

	logger(ctx).Info("deal updated", slog.Int64(logx.FieldDealID, deal.ID))

	s.emitter.DealUpdated(detach(ctx), deal.ID)

	return deal, nil
}

// Delete сообщает, была ли сделка. Событие уходит только при реальном удалении.
func (s *DealService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("repo.Delete: %w", err)
	}

	if !removed {
		return false, nil
	}

	logger(ctx).Info("deal deleted", slog.Int64(logx.FieldDealID, id))

	s.emitter.DealDeleted(detach(ctx), id)

	return true, nil
}

// detach отвязывает отправку события от отмены запроса, сохраняя значения
// контекста (логгер, trace id).
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
