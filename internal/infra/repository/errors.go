package repository

import (
	"errors"
	"fmt"

	repo "ecom/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// unique_violation
const pgUniqueViolation = "23505"

// gorm/pgxのエラーをrepositoryのエラーに寄せる
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", repo.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

func pageScope(q repo.PageQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Skip).Limit(q.Limit)
	}
}
