package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
	"github.com/centavohq/centavo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFavoriteRepository implements the favorite repository ports using pgxpool.
type PgxFavoriteRepository struct {
	baseRepository
}

// NewFavoriteRepository creates a new PgxFavoriteRepository.
func NewFavoriteRepository(db *pgxpool.Pool) *PgxFavoriteRepository {
	return &PgxFavoriteRepository{
		baseRepository: baseRepository{Pool: db},
	}
}

// ListFavoritesForUser returns the user's favorites joined with their rate
// rows, ordered by display order ascending.
func (r *PgxFavoriteRepository) ListFavoritesForUser(ctx context.Context, userID string) ([]domain.FavoriteWithRate, error) {
	query := `
		SELECT
			f.favorite_id, f.user_id, f.exchange_rate_id, f.display_order,
			f.created_at, f.created_by, f.last_updated_at, f.last_updated_by,
			r.exchange_rate_id, r.rate_date, r.currency_code, r.rate_type, r.rate,
			r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
		FROM exchange_rate_favorites f
		JOIN exchange_rates r ON r.exchange_rate_id = f.exchange_rate_id
		WHERE f.user_id = $1
		ORDER BY f.display_order ASC`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list favorites", err)
	}
	defer rows.Close()

	var favorites []domain.FavoriteWithRate
	for rows.Next() {
		var mf models.RateFavorite
		var mr models.ExchangeRate
		err := rows.Scan(
			&mf.FavoriteID, &mf.UserID, &mf.ExchangeRateID, &mf.DisplayOrder,
			&mf.CreatedAt, &mf.CreatedBy, &mf.LastUpdatedAt, &mf.LastUpdatedBy,
			&mr.ExchangeRateID, &mr.RateDate, &mr.CurrencyCode, &mr.RateType, &mr.Rate,
			&mr.CreatedAt, &mr.CreatedBy, &mr.LastUpdatedAt, &mr.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan favorite", err)
		}
		favorites = append(favorites, domain.FavoriteWithRate{
			RateFavorite: mapping.ToDomainRateFavorite(mf),
			Rate:         mapping.ToDomainExchangeRate(mr),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating favorites", err)
	}
	return favorites, nil
}

// FindFavoriteByID retrieves a single favorite.
func (r *PgxFavoriteRepository) FindFavoriteByID(ctx context.Context, favoriteID string) (*domain.RateFavorite, error) {
	query := `
		SELECT favorite_id, user_id, exchange_rate_id, display_order,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rate_favorites
		WHERE favorite_id = $1`

	var m models.RateFavorite
	err := r.Pool.QueryRow(ctx, query, favoriteID).Scan(
		&m.FavoriteID, &m.UserID, &m.ExchangeRateID, &m.DisplayOrder,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("favorite not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find favorite", err)
	}

	favorite := mapping.ToDomainRateFavorite(m)
	return &favorite, nil
}

// Unique constraints on exchange_rate_favorites. uq_favorites_user_rate
// guards one favorite per rate row; uq_favorites_user_order guards dense,
// unambiguous display orders.
const (
	favoriteUserRateConstraint  = "uq_favorites_user_rate"
	favoriteUserOrderConstraint = "uq_favorites_user_order"
)

// SaveFavorite persists a new favorite at the end of the user's list. The
// next display order is computed inside the insert; if two concurrent
// creates for the same user still land on the same order, the unique
// constraint rejects the loser instead of leaving duplicate orders.
func (r *PgxFavoriteRepository) SaveFavorite(ctx context.Context, favorite domain.RateFavorite) error {
	m := mapping.ToModelRateFavorite(favorite)
	query := `
		INSERT INTO exchange_rate_favorites (
			favorite_id, user_id, exchange_rate_id, display_order,
			created_at, created_by, last_updated_at, last_updated_by
		)
		SELECT $1, $2, $3, COALESCE(MAX(display_order) + 1, 0), $4, $5, $6, $7
		FROM exchange_rate_favorites
		WHERE user_id = $2`

	_, err := r.Pool.Exec(ctx, query,
		m.FavoriteID, m.UserID, m.ExchangeRateID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if constraint, ok := uniqueViolationConstraint(err); ok {
			switch constraint {
			case favoriteUserOrderConstraint:
				return apperrors.NewAppError(409, "favorite order changed concurrently, retry", apperrors.ErrDuplicate)
			case favoriteUserRateConstraint:
				return apperrors.NewAppError(409, "rate is already a favorite", apperrors.ErrDuplicate)
			}
		}
		return apperrors.NewAppError(500, "failed to save favorite", err)
	}
	return nil
}

// DeleteFavorite removes a favorite owned by the user.
func (r *PgxFavoriteRepository) DeleteFavorite(ctx context.Context, userID, favoriteID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM exchange_rate_favorites WHERE user_id = $1 AND favorite_id = $2`,
		userID, favoriteID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("favorite not found")
	}
	return nil
}

// ReorderFavorites rewrites display orders in two phases inside one
// transaction. Because (user_id, display_order) is unique, writing final
// orders directly can collide with another row's current order mid-batch;
// phase one parks every affected row at a distinct negative offset
// (-1 - index) to clear the positive range, phase two writes the final
// positive orders. Rows outside the affected set keep their order.
func (r *PgxFavoriteRepository) ReorderFavorites(ctx context.Context, userID string, orderedFavoriteIDs []string) error {
	update := `
		UPDATE exchange_rate_favorites
		SET display_order = $1, last_updated_at = NOW(), last_updated_by = $4
		WHERE user_id = $2 AND favorite_id = $3`

	return r.withTx(ctx, func(tx pgx.Tx) error {
		for i, favoriteID := range orderedFavoriteIDs {
			tag, err := tx.Exec(ctx, update, -1-i, userID, favoriteID, userID)
			if err != nil {
				return apperrors.NewAppError(500, "failed to park favorite order", err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.NewNotFoundError(fmt.Sprintf("favorite %s not found for reorder", favoriteID))
			}
		}

		for i, favoriteID := range orderedFavoriteIDs {
			if _, err := tx.Exec(ctx, update, i, userID, favoriteID, userID); err != nil {
				return apperrors.NewAppError(500, "failed to apply favorite order", err)
			}
		}
		return nil
	})
}
