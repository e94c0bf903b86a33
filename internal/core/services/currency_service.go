package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
)

// currencyService provides business logic for currencies and is the single
// source of the crypto classifier used by all conversion code.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// Classifier builds the crypto classifier from the currency table, unioned
// with the built-in ticker seed so classification works before any admin
// has registered crypto currencies.
func (s *currencyService) Classifier(ctx context.Context) (conversion.Classifier, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build currency classifier: %w", err)
	}

	codes := append([]string{}, conversion.DefaultCryptoTickers...)
	for _, c := range currencies {
		if c.IsCrypto() {
			codes = append(codes, c.CurrencyCode)
		}
	}
	return conversion.NewStaticClassifier(codes...), nil
}

// CreateCurrency persists a new currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	code := strings.ToUpper(req.CurrencyCode)
	kind := domain.CurrencyKind(req.Kind)
	if kind != domain.Fiat && kind != domain.Crypto {
		return nil, fmt.Errorf("%w: currency kind must be FIAT or CRYPTO", apperrors.ErrValidation)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Kind:         kind,
		Precision:    req.Precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}
