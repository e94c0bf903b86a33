package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
	"github.com/centavohq/centavo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `
	exchange_rate_id, rate_date, currency_code, rate_type, rate,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the exchange rate repository ports
// using pgxpool.
type PgxExchangeRateRepository struct {
	baseRepository
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		baseRepository: baseRepository{Pool: db},
	}
}

// UpsertRates writes a batch of rates in one transaction, keyed on the
// (rate_date, currency_code, rate_type) unique constraint. Re-running the
// same batch updates in place instead of duplicating or erroring, which
// also makes concurrent duplicate runs harmless.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) (int, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, rate_date, currency_code, rate_type, rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (rate_date, currency_code, rate_type) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		for _, rate := range rates {
			m := mapping.ToModelExchangeRate(rate)
			_, err := tx.Exec(ctx, query,
				m.ExchangeRateID, m.RateDate, m.CurrencyCode, m.RateType, m.Rate,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to upsert exchange rate "+m.CurrencyCode+"/"+m.RateType, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rates), nil
}

// SaveExchangeRate persists a single manually entered rate, using the same
// conflict target as the sync upsert.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if _, err := r.UpsertRates(ctx, []domain.ExchangeRate{rate}); err != nil {
		return err
	}
	return nil
}

// ListRatesForCurrency retrieves every rate type for the currency on its
// most recent rate date, in insertion order.
func (r *PgxExchangeRateRepository) ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	currencyCode = strings.ToUpper(currencyCode)
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1
		  AND rate_date = (SELECT MAX(rate_date) FROM exchange_rates WHERE currency_code = $1)
		ORDER BY created_at, exchange_rate_id`

	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	return scanExchangeRates(rows)
}

// FindRateByType retrieves the latest rate for a (currency, type) pair.
func (r *PgxExchangeRateRepository) FindRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1 AND rate_type = $2
		ORDER BY rate_date DESC
		LIMIT 1`

	return r.queryOne(ctx, query, strings.ToUpper(currencyCode), strings.ToLower(rateType))
}

// FindRateByID retrieves a rate row by its primary key.
func (r *PgxExchangeRateRepository) FindRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE exchange_rate_id = $1`

	return r.queryOne(ctx, query, exchangeRateID)
}

// FindLatestSyncTime returns when the most recent rate row was stored, or
// nil for an empty store.
func (r *PgxExchangeRateRepository) FindLatestSyncTime(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MAX(created_at) FROM exchange_rates`).Scan(&latest)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find latest sync time", err)
	}
	return latest, nil
}

// ListKnownCurrencies returns the distinct currency codes in the store.
func (r *PgxExchangeRateRepository) ListKnownCurrencies(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT currency_code FROM exchange_rates ORDER BY currency_code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list known currencies", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency code", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency codes", err)
	}
	return codes, nil
}

func (r *PgxExchangeRateRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.ExchangeRate, error) {
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.ExchangeRateID, &m.RateDate, &m.CurrencyCode, &m.RateType, &m.Rate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

func scanExchangeRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	for rows.Next() {
		var m models.ExchangeRate
		err := rows.Scan(
			&m.ExchangeRateID, &m.RateDate, &m.CurrencyCode, &m.RateType, &m.Rate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}
	return rates, nil
}
