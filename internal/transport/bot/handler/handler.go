package handler

import (
	"context"

	"deal_service/internal/domain/entity"
)

// DealReader — операции чтения сделок, доступные боту.
type DealReader interface {
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	List(ctx context.Context) ([]*entity.Deal, error)
}

type Handler struct {
	deals DealReader
}

func New(deals DealReader) *Handler {
	return &Handler{
		deals: deals,
	}
}
