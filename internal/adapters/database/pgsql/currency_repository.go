package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
	"github.com/centavohq/centavo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRepository implements the currency repository ports using pgxpool.
type PgxCurrencyRepository struct {
	baseRepository
}

// NewCurrencyRepository creates a new PgxCurrencyRepository.
func NewCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		baseRepository: baseRepository{Pool: db},
	}
}

// SaveCurrency persists a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO currencies (
			currency_code, symbol, name, kind, precision,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.CurrencyCode, m.Symbol, m.Name, m.Kind, m.Precision,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "currency already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	return nil
}

// FindCurrencyByCode retrieves a specific currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	var m models.Currency
	err := r.Pool.QueryRow(ctx, `
		SELECT currency_code, symbol, name, kind, precision,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1`,
		strings.ToUpper(currencyCode),
	).Scan(
		&m.CurrencyCode, &m.Symbol, &m.Name, &m.Kind, &m.Precision,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find currency", err)
	}

	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

// ListCurrencies retrieves all available currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT currency_code, symbol, name, kind, precision,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currencies", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var m models.Currency
		err := rows.Scan(
			&m.CurrencyCode, &m.Symbol, &m.Name, &m.Kind, &m.Precision,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currencies", err)
	}
	return currencies, nil
}
