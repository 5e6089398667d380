package server

import (
	"deal_service/internal/domain/entity"
	"deal_service/pkg/lox"
	"deal_service/pkg/rest"
)

// две цифры после запятой, как в NUMERIC(12, 2)
const valuePlaces = 2

func newRESTDeal(deal *entity.Deal) rest.Deal {
	return rest.Deal{
		ID:            deal.ID,
		Title:         deal.Title,
		CompanyID:     deal.CompanyID,
		DistributorID: deal.DistributorID,
		Tags:          deal.TagIDs,
		Value:         deal.Value.StringFixed(valuePlaces),
		CreatedAt:     deal.CreatedAt,
		UpdatedAt:     deal.UpdatedAt,
	}
}

func newRESTDealList(deals []*entity.Deal) rest.DealList {
	return rest.DealList{Deals: lox.Map(deals, newRESTDeal)}
}

func newDomainDealCreate(request rest.CreateDealRequest) entity.DealCreate {
	return entity.DealCreate{
		Title:         request.Title,
		CompanyID:     request.CompanyID,
		Value:         request.Value,
		TagIDs:        request.Tags,
		DistributorID: request.DistributorID,
	}
}

func newDomainDealUpdate(request rest.UpdateDealRequest) entity.DealUpdate {
	return entity.DealUpdate{
		Title:         request.Title,
		DistributorID: request.DistributorID,
		TagIDs:        request.Tags,
		Value:         request.Value,
	}
}

func newRESTCompany(company *entity.Company) rest.Company {
	return rest.Company{
		ID:        company.ID,
		Name:      company.Name,
		Address:   company.Address,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

func newRESTDistributor(distributor *entity.Distributor) rest.Distributor {
	return rest.Distributor{
		ID:           distributor.ID,
		Name:         distributor.Name,
		ContactEmail: distributor.ContactEmail,
		CreatedAt:    distributor.CreatedAt,
		UpdatedAt:    distributor.UpdatedAt,
	}
}

func newRESTTag(tag *entity.Tag) rest.Tag {
	return rest.Tag{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
