package services

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// Classifier builds the crypto classifier used by all conversion code:
	// currencies stored with kind CRYPTO plus the built-in ticker seed.
	Classifier(ctx context.Context) (conversion.Classifier, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
