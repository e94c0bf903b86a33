package services

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListRatesForCurrency retrieves every rate type quoted for the
	// currency on its most recent rate date.
	ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)

	// GetRateByType retrieves the latest rate for a (currency, type) pair,
	// for manual overrides of the default selection.
	GetRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error)

	// GetDefaultRate picks the rate to preselect for a currency. Favorites
	// of the given user win first (ordered), then "blue", then "official",
	// then the first available rate. userID may be empty for anonymous
	// resolution.
	GetDefaultRate(ctx context.Context, currencyCode, userID string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a manually entered exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// RateSyncSvc runs the rate feed synchronization.
type RateSyncSvc interface {
	// SyncExchangeRates fetches a snapshot from the rate feed, validates
	// and normalizes it, and upserts the surviving entries for today in one
	// transaction. Failures before the write leave the store untouched.
	SyncExchangeRates(ctx context.Context, opts dto.SyncOptions) (*dto.SyncResult, error)
}
