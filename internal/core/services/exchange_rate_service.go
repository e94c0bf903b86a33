package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateService provides rate queries and default-rate resolution.
type exchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	favoriteRepo    portsrepo.FavoriteReader
	currencyService portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	favoriteRepo portsrepo.FavoriteReader,
	currencyService portssvc.CurrencyReaderSvc,
) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:        rateRepo,
		favoriteRepo:    favoriteRepo,
		currencyService: currencyService,
	}
}

// ListRatesForCurrency retrieves every rate type quoted for the currency on
// its most recent rate date.
func (s *exchangeRateService) ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	currencyCode = strings.ToUpper(currencyCode)
	rates, err := s.rateRepo.ListRatesForCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for %s: %w", currencyCode, err)
	}
	return rates, nil
}

// GetRateByType retrieves the latest rate for a (currency, type) pair.
func (s *exchangeRateService) GetRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error) {
	currencyCode = strings.ToUpper(currencyCode)
	rateType = strings.ToLower(rateType)
	rate, err := s.rateRepo.FindRateByType(ctx, currencyCode, rateType)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s rate for %s: %w", rateType, currencyCode, err)
	}
	return rate, nil
}

// GetDefaultRate picks the rate to preselect for a currency.
//
// Priority: the user's first favorite (by display order) whose currency
// matches and whose type is quoted today, then "blue", then "official",
// then the first available rate in insertion order. A custom user-typed
// rate is never selected here; it only exists once a caller explicitly
// enters it on a RateSelection.
func (s *exchangeRateService) GetDefaultRate(ctx context.Context, currencyCode, userID string) (*domain.ExchangeRate, error) {
	currencyCode = strings.ToUpper(currencyCode)

	rates, err := s.rateRepo.ListRatesForCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default rate for %s: %w", currencyCode, err)
	}
	if len(rates) == 0 {
		return nil, apperrors.NewNotFoundError("no rates available for currency " + currencyCode)
	}

	byType := make(map[string]domain.ExchangeRate, len(rates))
	for _, r := range rates {
		if _, exists := byType[r.RateType]; !exists {
			byType[r.RateType] = r
		}
	}

	if userID != "" {
		favorites, err := s.favoriteRepo.ListFavoritesForUser(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load favorites for default rate: %w", err)
		}
		// Favorites are pre-sorted by display order, so the first match wins.
		for _, fav := range favorites {
			if fav.Rate.CurrencyCode != currencyCode {
				continue
			}
			if rate, ok := byType[fav.Rate.RateType]; ok {
				return &rate, nil
			}
		}
	}

	if rate, ok := byType[domain.RateTypeBlue]; ok {
		return &rate, nil
	}
	if rate, ok := byType[domain.RateTypeOfficial]; ok {
		return &rate, nil
	}
	return &rates[0], nil
}

// CreateExchangeRate persists a manually entered exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	currencyCode := strings.ToUpper(req.CurrencyCode)
	rateType := strings.ToLower(req.RateType)
	if rateType == "" {
		rateType = domain.RateTypeOfficial
	}
	if rateType == domain.RateTypeDefault {
		return nil, fmt.Errorf("%w: rate type '%s' is reserved", apperrors.ErrValidation, rateType)
	}

	if _, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", currencyCode, err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		RateDate:       domain.NormalizeRateDate(req.RateDate),
		CurrencyCode:   currencyCode,
		RateType:       rateType,
		Rate:           req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	return &rate, nil
}
