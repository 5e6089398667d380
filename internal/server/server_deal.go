package server

import (
	"context"
	"fmt"
	"net/http"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
	"deal_service/pkg/httpx/reply"
	"deal_service/pkg/httpx/req"
	"deal_service/pkg/rest"
)

type dealService interface {
	Create(ctx context.Context, in entity.DealCreate) (*entity.Deal, error)
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	List(ctx context.Context) ([]*entity.Deal, error)
	Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) listDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	deals, err := s.dealService.List(ctx)
	if err != nil {
		return fmt.Errorf("dealService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDealList(deals))

	return nil
}

func (s DealServer) createDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	deal, err := s.dealService.Create(ctx, newDomainDealCreate(request))
	if err != nil {
		return fmt.Errorf("dealService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTDeal(deal))

	return nil
}

func (s DealServer) getDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidDealID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	deal, err := s.dealService.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("dealService.GetByID: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) updateDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidDealID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	var request rest.UpdateDealRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	deal, err := s.dealService.Update(ctx, id, newDomainDealUpdate(request))
	if err != nil {
		return fmt.Errorf("dealService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) deleteDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidDealID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	removed, err := s.dealService.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("dealService.Delete: %w", err)
	}

	if !removed {
		return domain.Errorf(errcodes.DealNotFound, "deal %d not found", id)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteResult{Success: true})

	return nil
}
