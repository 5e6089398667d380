package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
)

const (
	tableDeals        = "deals"
	tableCompanies    = "companies"
	tableDistributors = "distributors"
	tableTags         = "tags"
)

const dealSelect = `
	SELECT d.id, d.title, d.company_id, c.id AS company_ref, d.distributor_id,
	       d.value, d.created_at, d.updated_at
	FROM deals d
	LEFT JOIN companies c ON c.id = d.company_id`

type Option func(r *options)

type options struct {
	now func() time.Time
}

// WithClock подменяет источник времени для created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) timestamp() time.Time {
	// postgres хранит микросекунды
	return o.now().UTC().Truncate(time.Microsecond)
}

type DealRepository struct {
	db   *sqlx.DB
	opts options
}

// NewDealRepository создаёт новый экземпляр репозитория сделок.
func NewDealRepository(db *sqlx.DB, opts ...Option) *DealRepository {
	return &DealRepository{db: db, opts: newOptions(opts)}
}

// Create сохраняет сделку вместе с тегами. Несуществующие теги отбрасываются.
func (r *DealRepository) Create(ctx context.Context, in entity.DealCreate) (*entity.Deal, error) {
	var deal *entity.Deal

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := mustExist(ctx, tx, tableCompanies, in.CompanyID, errcodes.CompanyNotFound); err != nil {
			return err
		}

		var distributorID *int64
		if in.HasDistributor() {
			if err := mustExist(ctx, tx, tableDistributors, *in.DistributorID, errcodes.DistributorNotFound); err != nil {
				return err
			}
			distributorID = in.DistributorID
		}

		now := r.opts.timestamp()

		query := tx.Rebind(`
			INSERT INTO deals (title, company_id, distributor_id, value, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id`)

		var id int64
		if err := tx.GetContext(ctx, &id, query, in.Title, in.CompanyID, distributorID, in.Value, now, now); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert deal")
		}

		if err := attachTags(ctx, tx, id, in.TagIDs); err != nil {
			return err
		}

		var err error
		deal, err = getDeal(ctx, tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return deal, nil
}

// GetByID возвращает сделку по идентификатору.
func (r *DealRepository) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	return getDeal(ctx, r.db, id)
}

// List возвращает все сделки в порядке создания.
func (r *DealRepository) List(ctx context.Context) ([]*entity.Deal, error) {
	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, dealSelect+` ORDER BY d.id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	var links []dealTagSchema
	if err := r.db.SelectContext(ctx, &links, `SELECT deal_id, tag_id FROM deal_tags ORDER BY deal_id, tag_id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deal tags")
	}

	tagsByDeal := make(map[int64][]int64, len(schemas))
	for _, l := range links {
		tagsByDeal[l.DealID] = append(tagsByDeal[l.DealID], l.TagID)
	}

	deals := make([]*entity.Deal, 0, len(schemas))
	for _, s := range schemas {
		deal, err := s.toDomain(tagsByDeal[s.ID])
		if err != nil {
			return nil, err
		}
		deals = append(deals, deal)
	}

	return deals, nil
}

// Update частично обновляет сделку. Всё выполняется в одной транзакции:
// ошибка на любом шаге оставляет запись нетронутой.
func (r *DealRepository) Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error) {
	var deal *entity.Deal

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := getDeal(ctx, tx, id)
		if err != nil {
			return err
		}

		title := lo.FromPtrOr(upd.Title, current.Title)
		value := lo.FromPtrOr(upd.Value, current.Value)

		distributorID := current.DistributorID
		if upd.HasDistributor() {
			if err := mustExist(ctx, tx, tableDistributors, *upd.DistributorID, errcodes.DistributorNotFound); err != nil {
				return err
			}
			distributorID = upd.DistributorID
		}

		query := tx.Rebind(`
			UPDATE deals
			SET title = ?, distributor_id = ?, value = ?, updated_at = ?
			WHERE id = ?`)

		if _, err := tx.ExecContext(ctx, query, title, distributorID, value, r.opts.timestamp(), id); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update deal")
		}

		if upd.ReplacesTags() {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM deal_tags WHERE deal_id = ?`), id); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to detach deal tags")
			}

			if err := attachTags(ctx, tx, id, upd.TagIDs); err != nil {
				return err
			}
		}

		deal, err = getDeal(ctx, tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return deal, nil
}

// Delete удаляет сделку. Связи с тегами удаляются каскадно, сами теги остаются.
func (r *DealRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tableDeals, id)
}

func getDeal(ctx context.Context, q sqlx.ExtContext, id int64) (*entity.Deal, error) {
	var schema dealSchema
	if err := sqlx.GetContext(ctx, q, &schema, q.Rebind(dealSelect+` WHERE d.id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(errcodes.DealNotFound, "deal %d not found", id)
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	var tagIDs []int64
	query := q.Rebind(`SELECT tag_id FROM deal_tags WHERE deal_id = ? ORDER BY tag_id`)
	if err := sqlx.SelectContext(ctx, q, &tagIDs, query, id); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal tags")
	}

	return schema.toDomain(tagIDs)
}

// attachTags связывает сделку только с существующими тегами.
func attachTags(ctx context.Context, tx *sqlx.Tx, dealID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		INSERT INTO deal_tags (deal_id, tag_id)
		SELECT CAST(? AS BIGINT), id FROM tags WHERE id IN (?)`, dealID, lo.Uniq(tagIDs))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to attach deal tags")
	}

	return nil
}
