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

const tagSelect = `SELECT id, name, created_at, updated_at FROM tags`

type TagRepository struct {
	db   *sqlx.DB
	opts options
}

func NewTagRepository(db *sqlx.DB, opts ...Option) *TagRepository {
	return &TagRepository{db: db, opts: newOptions(opts)}
}

// Create сохраняет тег. Имя тега уникально.
func (r *TagRepository) Create(ctx context.Context, name string) (*entity.Tag, error) {
	var tag *entity.Tag

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var taken bool
		if err := tx.GetContext(ctx, &taken, tx.Rebind(`SELECT EXISTS(SELECT 1 FROM tags WHERE name = ?)`), name); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check tag name")
		}

		if taken {
			return domain.Errorf(errcodes.TagAlreadyExists, "tag %q already exists", name)
		}

		now := r.opts.timestamp()

		query := tx.Rebind(`
			INSERT INTO tags (name, created_at, updated_at)
			VALUES (?, ?, ?)
			RETURNING id`)

		var id int64
		if err := tx.GetContext(ctx, &id, query, name, now, now); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert tag")
		}

		tag = &entity.Tag{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id int64) (*entity.Tag, error) {
	var schema tagSchema
	if err := r.db.GetContext(ctx, &schema, r.db.Rebind(tagSelect+` WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(errcodes.TagNotFound, "tag %d not found", id)
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get tag")
	}

	return schema.toDomain(), nil
}

func (r *TagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	var schemas []tagSchema
	if err := r.db.SelectContext(ctx, &schemas, tagSelect+` ORDER BY id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(schemas))
	for i := range schemas {
		tags = append(tags, schemas[i].toDomain())
	}

	return tags, nil
}

// Delete удаляет тег и его связи со сделками.
func (r *TagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, tableTags, id)
}
