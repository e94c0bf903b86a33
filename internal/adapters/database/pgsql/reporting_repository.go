package pgsql

import (
	"context"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository implements the dashboard aggregate queries using
// pgxpool. Sums are grouped by currency in native units only; pivoting
// through USD is the reporting service's job.
type PgxReportingRepository struct {
	baseRepository
}

// NewReportingRepository creates a new PgxReportingRepository.
func NewReportingRepository(db *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{
		baseRepository: baseRepository{Pool: db},
	}
}

// SumLatestBalancesByCurrency sums each account's most recent snapshot
// balance, grouped by currency.
func (r *PgxReportingRepository) SumLatestBalancesByCurrency(ctx context.Context, userID string) ([]domain.CurrencyBalance, error) {
	query := `
		SELECT s.currency_code, SUM(s.balance)
		FROM asset_snapshots s
		JOIN (
			SELECT account_id, MAX(snapshot_date) AS latest_date
			FROM asset_snapshots
			WHERE user_id = $1
			GROUP BY account_id
		) latest ON latest.account_id = s.account_id AND latest.latest_date = s.snapshot_date
		WHERE s.user_id = $1
		GROUP BY s.currency_code
		ORDER BY s.currency_code`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum balances", err)
	}
	defer rows.Close()

	var balances []domain.CurrencyBalance
	for rows.Next() {
		var b domain.CurrencyBalance
		if err := rows.Scan(&b.CurrencyCode, &b.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balances", err)
	}
	return balances, nil
}

// SumExpensesByCategory sums expenses in the period grouped by
// (category, currency).
func (r *PgxReportingRepository) SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	query := `
		SELECT category, currency_code, SUM(amount)
		FROM expenses
		WHERE user_id = $1 AND spent_at >= $2 AND spent_at < $3
		GROUP BY category, currency_code
		ORDER BY category, currency_code`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum expenses", err)
	}
	defer rows.Close()

	var spends []domain.CategorySpend
	for rows.Next() {
		var s domain.CategorySpend
		if err := rows.Scan(&s.Category, &s.CurrencyCode, &s.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense sum", err)
		}
		spends = append(spends, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense sums", err)
	}
	return spends, nil
}
