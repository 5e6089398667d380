package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
)

const companySelect = `SELECT id, name, address, created_at, updated_at FROM companies`

type CompanyRepository struct {
	db   *sqlx.DB
	opts options
}

func NewCompanyRepository(db *sqlx.DB, opts ...Option) *CompanyRepository {
	return &CompanyRepository{db: db, opts: newOptions(opts)}
}

func (r *CompanyRepository) Create(ctx context.Context, name string, address *string) (*entity.Company, error) {
	now := r.opts.timestamp()

	query := r.db.Rebind(`
		INSERT INTO companies (name, address, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	var id int64
	if err := r.db.GetContext(ctx, &id, query, name, address, now, now); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to insert company")
	}

	return &entity.Company{ID: id, Name: name, Address: address, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var schema companySchema
	if err := r.db.GetContext(ctx, &schema, r.db.Rebind(companySelect+` WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(errcodes.CompanyNotFound, "company %d not found", id)
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get company")
	}

	return schema.toDomain(), nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	var schemas []companySchema
	if err := r.db.SelectContext(ctx, &schemas, companySelect+` ORDER BY id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(schemas))
	for i := range schemas {
		companies = append(companies, schemas[i].toDomain())
	}

	return companies, nil
}

// Delete удаляет компанию вместе со всеми её сделками.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tableCompanies, id)
}
