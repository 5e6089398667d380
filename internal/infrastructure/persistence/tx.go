package persistence

import (
	"context"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/jmoiron/sqlx"

	"deal_service/internal/domain"
	"deal_service/pkg/errcodes"
)

// withTx выполняет функцию в транзакции. Любая ошибка fn откатывает все
// изменения, сделанные внутри неё.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// exists проверяет наличие строки с данным id. table — всегда константа пакета.
func exists(ctx context.Context, q sqlx.ExtContext, table string, id int64) (bool, error) {
	query := q.Rebind(`SELECT EXISTS(SELECT 1 FROM ` + table + ` WHERE id = ?)`)

	var found bool
	if err := sqlx.GetContext(ctx, q, &found, query, id); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check "+table+" existence")
	}

	return found, nil
}

// mustExist возвращает ошибку с кодом code, если строки с таким id нет.
func mustExist(ctx context.Context, q sqlx.ExtContext, table string, id int64, code failure.ErrorCode) error {
	found, err := exists(ctx, q, table, id)
	if err != nil {
		return err
	}

	if !found {
		return domain.Errorf(code, "id %d does not exist in %s", id, table)
	}

	return nil
}

// deleteByID удаляет строку и сообщает, была ли она.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) (bool, error) {
	res, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM `+table+` WHERE id = ?`), id)
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to delete from "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to get affected rows")
	}

	return n > 0, nil
}
