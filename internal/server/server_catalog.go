package server

import (
	"context"
	"fmt"
	"net/http"

	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
	"deal_service/pkg/httpx/reply"
	"deal_service/pkg/httpx/req"
	"deal_service/pkg/lox"
	"deal_service/pkg/rest"
)

type catalogService interface {
	CreateCompany(ctx context.Context, name string, address *string) (*entity.Company, error)
	Company(ctx context.Context, id int64) (*entity.Company, error)
	Companies(ctx context.Context) ([]*entity.Company, error)
	DeleteCompany(ctx context.Context, id int64) error

	CreateDistributor(ctx context.Context, name, contactEmail string) (*entity.Distributor, error)
	Distributor(ctx context.Context, id int64) (*entity.Distributor, error)
	Distributors(ctx context.Context) ([]*entity.Distributor, error)
	DeleteDistributor(ctx context.Context, id int64) error

	CreateTag(ctx context.Context, name string) (*entity.Tag, error)
	Tag(ctx context.Context, id int64) (*entity.Tag, error)
	Tags(ctx context.Context) ([]*entity.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

// CatalogServer обслуживает справочники: компании, дистрибьюторов и теги.
type CatalogServer struct {
	catalogService catalogService
}

func NewCatalogServer(catalogService catalogService) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

func (s CatalogServer) listCompanies(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	companies, err := s.catalogService.Companies(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.Companies: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CompanyList{Companies: lox.Map(companies, newRESTCompany)})

	return nil
}

func (s CatalogServer) createCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateCompanyRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	company, err := s.catalogService.CreateCompany(ctx, request.Name, request.Address)
	if err != nil {
		return fmt.Errorf("catalogService.CreateCompany: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTCompany(company))

	return nil
}

func (s CatalogServer) getCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidCompanyID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	company, err := s.catalogService.Company(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Company: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCompany(company))

	return nil
}

func (s CatalogServer) deleteCompany(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidCompanyID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	if err = s.catalogService.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("catalogService.DeleteCompany: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteResult{Success: true})

	return nil
}

func (s CatalogServer) listDistributors(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	distributors, err := s.catalogService.Distributors(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.Distributors: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DistributorList{Distributors: lox.Map(distributors, newRESTDistributor)})

	return nil
}

func (s CatalogServer) createDistributor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateDistributorRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	distributor, err := s.catalogService.CreateDistributor(ctx, request.Name, request.ContactEmail)
	if err != nil {
		return fmt.Errorf("catalogService.CreateDistributor: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTDistributor(distributor))

	return nil
}

func (s CatalogServer) getDistributor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidDistributorID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	distributor, err := s.catalogService.Distributor(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Distributor: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDistributor(distributor))

	return nil
}

func (s CatalogServer) deleteDistributor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidDistributorID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	if err = s.catalogService.DeleteDistributor(ctx, id); err != nil {
		return fmt.Errorf("catalogService.DeleteDistributor: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteResult{Success: true})

	return nil
}

func (s CatalogServer) listTags(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tags, err := s.catalogService.Tags(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.Tags: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TagList{Tags: lox.Map(tags, newRESTTag)})

	return nil
}

func (s CatalogServer) createTag(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateTagRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	tag, err := s.catalogService.CreateTag(ctx, request.Name)
	if err != nil {
		return fmt.Errorf("catalogService.CreateTag: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTTag(tag))

	return nil
}

func (s CatalogServer) getTag(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidTagID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	tag, err := s.catalogService.Tag(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Tag: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTag(tag))

	return nil
}

func (s CatalogServer) deleteTag(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := req.PathInt64(r.PathValue("id"), errcodes.InvalidTagID)
	if err != nil {
		return fmt.Errorf("req.PathInt64: %w", err)
	}

	if err = s.catalogService.DeleteTag(ctx, id); err != nil {
		return fmt.Errorf("catalogService.DeleteTag: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteResult{Success: true})

	return nil
}
