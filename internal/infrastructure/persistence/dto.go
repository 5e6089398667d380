package persistence

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
)

// dealSchema — внутренняя структура для маппинга строки deals.
// CompanyRef приходит из LEFT JOIN и пуст, если компания не найдена.
type dealSchema struct {
	ID            int64           `db:"id"`
	Title         string          `db:"title"`
	CompanyID     int64           `db:"company_id"`
	CompanyRef    sql.NullInt64   `db:"company_ref"`
	DistributorID sql.NullInt64   `db:"distributor_id"`
	Value         decimal.Decimal `db:"value"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// toDomain собирает сущность. Сделка без существующей компании не может
// быть построена.
func (s *dealSchema) toDomain(tagIDs []int64) (*entity.Deal, error) {
	if !s.CompanyRef.Valid {
		return nil, domain.Errorf(errcodes.CompanyNotFound, "company %d of deal %d does not exist", s.CompanyID, s.ID)
	}

	deal := &entity.Deal{
		ID:        s.ID,
		Title:     s.Title,
		CompanyID: s.CompanyRef.Int64,
		TagIDs:    tagIDs,
		Value:     s.Value,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}

	if deal.TagIDs == nil {
		deal.TagIDs = []int64{}
	}

	if s.DistributorID.Valid {
		id := s.DistributorID.Int64
		deal.DistributorID = &id
	}

	return deal, nil
}

type dealTagSchema struct {
	DealID int64 `db:"deal_id"`
	TagID  int64 `db:"tag_id"`
}

type companySchema struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   *string   `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *companySchema) toDomain() *entity.Company {
	return &entity.Company{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

type distributorSchema struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	ContactEmail string    `db:"contact_email"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (s *distributorSchema) toDomain() *entity.Distributor {
	return &entity.Distributor{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		CreatedAt:    s.CreatedAt.UTC(),
		UpdatedAt:    s.UpdatedAt.UTC(),
	}
}

type tagSchema struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *tagSchema) toDomain() *entity.Tag {
	return &entity.Tag{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}
