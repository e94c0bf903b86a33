package repositories

import (
	"context"
	"time"

	"github.com/centavohq/centavo_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListRatesForCurrency retrieves every rate type quoted for the currency
	// on its most recent rate date, in insertion order.
	ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)

	// FindRateByType retrieves the latest rate for a (currency, type) pair.
	FindRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error)

	// FindRateByID retrieves a rate row by its primary key.
	FindRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error)

	// FindLatestSyncTime returns the created_at of the most recently stored
	// rate, or nil when the store is empty. Used for the resync cooldown.
	FindLatestSyncTime(ctx context.Context) (*time.Time, error)

	// ListKnownCurrencies returns the distinct currency codes present in the
	// rate store.
	ListKnownCurrencies(ctx context.Context) ([]string, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertRates persists a batch of rates in one transaction, keyed on
	// (rate_date, currency_code, rate_type). Re-running with the same batch
	// is a no-op beyond redundant writes. Returns the number of rows written.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) (int, error)

	// SaveExchangeRate persists a single manually entered rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
