package services_test

import (
	"context"
	"time"

	"github.com/centavohq/centavo_backend/internal/adapters/oracle"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, exchangeRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindLatestSyncTime(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockExchangeRateRepository) ListKnownCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) (int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock FavoriteRepository ---

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ListFavoritesForUser(ctx context.Context, userID string) ([]domain.FavoriteWithRate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteWithRate), args.Error(1)
}

func (m *MockFavoriteRepository) FindFavoriteByID(ctx context.Context, favoriteID string) (*domain.RateFavorite, error) {
	args := m.Called(ctx, favoriteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateFavorite), args.Error(1)
}

func (m *MockFavoriteRepository) SaveFavorite(ctx context.Context, favorite domain.RateFavorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteFavorite(ctx context.Context, userID, favoriteID string) error {
	args := m.Called(ctx, userID, favoriteID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ReorderFavorites(ctx context.Context, userID string, orderedFavoriteIDs []string) error {
	args := m.Called(ctx, userID, orderedFavoriteIDs)
	return args.Error(0)
}

// --- Mock SnapshotRepository ---

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context, currencyCode string) ([]domain.AssetSnapshot, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListSnapshotCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSnapshotRepository) UpdateSnapshotUSD(ctx context.Context, snapshotID string, balanceInUSD decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, snapshotID, balanceInUSD, updatedBy)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumLatestBalancesByCurrency(ctx context.Context, userID string) ([]domain.CurrencyBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyBalance), args.Error(1)
}

func (m *MockReportingRepository) SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

// --- Mock CurrencyService ---

// MockCurrencyService implements the CurrencySvcFacade interface
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) Classifier(ctx context.Context) (conversion.Classifier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(conversion.Classifier), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateService (reader side, for reporting) ---

type MockExchangeRateReaderSvc struct {
	mock.Mock
}

func (m *MockExchangeRateReaderSvc) ListRatesForCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateReaderSvc) GetRateByType(ctx context.Context, currencyCode, rateType string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateReaderSvc) GetDefaultRate(ctx context.Context, currencyCode, userID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock RateFeed ---

type MockRateFeed struct {
	mock.Mock
}

func (m *MockRateFeed) FetchSnapshot(ctx context.Context) (*oracle.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oracle.Snapshot), args.Error(1)
}

// --- Mock Limiter ---

type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
