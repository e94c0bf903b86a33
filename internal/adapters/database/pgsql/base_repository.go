package pgsql

import (
	"context"
	"errors"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// baseRepository holds the pool shared by the concrete repositories.
type baseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. Errors from fn pass through untouched so callers
// keep their codes; begin and commit failures are wrapped here.
func (r *baseRepository) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	err := pgx.BeginFunc(ctx, r.Pool, fn)
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.NewAppError(500, "transaction failed", err)
}
