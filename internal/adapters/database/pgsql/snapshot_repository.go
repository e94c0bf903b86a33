package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
	"github.com/centavohq/centavo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxSnapshotRepository implements the asset snapshot repository ports
// using pgxpool.
type PgxSnapshotRepository struct {
	baseRepository
}

// NewSnapshotRepository creates a new PgxSnapshotRepository.
func NewSnapshotRepository(db *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{
		baseRepository: baseRepository{Pool: db},
	}
}

// ListSnapshots returns historical snapshots whose account currency is not
// USD, oldest first, optionally filtered to one currency.
func (r *PgxSnapshotRepository) ListSnapshots(ctx context.Context, currencyCode string) ([]domain.AssetSnapshot, error) {
	query := `
		SELECT snapshot_id, account_id, user_id, currency_code, snapshot_date,
		       balance, balance_in_usd,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM asset_snapshots
		WHERE currency_code <> 'USD'`
	args := []any{}
	if currencyCode != "" {
		query += ` AND currency_code = $1`
		args = append(args, strings.ToUpper(currencyCode))
	}
	query += ` ORDER BY snapshot_date, snapshot_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list snapshots", err)
	}
	defer rows.Close()

	var snapshots []domain.AssetSnapshot
	for rows.Next() {
		var m models.AssetSnapshot
		err := rows.Scan(
			&m.SnapshotID, &m.AccountID, &m.UserID, &m.CurrencyCode, &m.SnapshotDate,
			&m.Balance, &m.BalanceInUSD,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan snapshot", err)
		}
		snapshots = append(snapshots, mapping.ToDomainAssetSnapshot(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating snapshots", err)
	}
	return snapshots, nil
}

// ListSnapshotCurrencies returns the distinct non-USD currencies appearing
// in any snapshot.
func (r *PgxSnapshotRepository) ListSnapshotCurrencies(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT DISTINCT currency_code FROM asset_snapshots WHERE currency_code <> 'USD' ORDER BY currency_code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list snapshot currencies", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan snapshot currency", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating snapshot currencies", err)
	}
	return codes, nil
}

// UpdateSnapshotUSD overwrites the derived USD balance of one snapshot.
func (r *PgxSnapshotRepository) UpdateSnapshotUSD(ctx context.Context, snapshotID string, balanceInUSD decimal.Decimal, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE asset_snapshots
		SET balance_in_usd = $1, last_updated_at = $2, last_updated_by = $3
		WHERE snapshot_id = $4`,
		balanceInUSD, time.Now(), updatedBy, snapshotID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update snapshot USD balance", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("snapshot not found")
	}
	return nil
}
