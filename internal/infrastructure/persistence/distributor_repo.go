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

const distributorSelect = `SELECT id, name, contact_email, created_at, updated_at FROM distributors`

type DistributorRepository struct {
	db   *sqlx.DB
	opts options
}

func NewDistributorRepository(db *sqlx.DB, opts ...Option) *DistributorRepository {
	return &DistributorRepository{db: db, opts: newOptions(opts)}
}

func (r *DistributorRepository) Create(ctx context.Context, name, contactEmail string) (*entity.Distributor, error) {
	now := r.opts.timestamp()

	query := r.db.Rebind(`
		INSERT INTO distributors (name, contact_email, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	var id int64
	if err := r.db.GetContext(ctx, &id, query, name, contactEmail, now, now); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to insert distributor")
	}

	return &entity.Distributor{ID: id, Name: name, ContactEmail: contactEmail, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *DistributorRepository) GetByID(ctx context.Context, id int64) (*entity.Distributor, error) {
	var schema distributorSchema
	if err := r.db.GetContext(ctx, &schema, r.db.Rebind(distributorSelect+` WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(errcodes.DistributorNotFound, "distributor %d not found", id)
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get distributor")
	}

	return schema.toDomain(), nil
}

func (r *DistributorRepository) List(ctx context.Context) ([]*entity.Distributor, error) {
	var schemas []distributorSchema
	if err := r.db.SelectContext(ctx, &schemas, distributorSelect+` ORDER BY id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list distributors")
	}

	distributors := make([]*entity.Distributor, 0, len(schemas))
	for i := range schemas {
		distributors = append(distributors, schemas[i].toDomain())
	}

	return distributors, nil
}

// Delete удаляет дистрибьютора, у его сделок distributor_id становится NULL.
func (r *DistributorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tableDistributors, id)
}
