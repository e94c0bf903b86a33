package services_test

import (
	"context"
	"testing"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/core/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

func (suite *CurrencyServiceTestSuite) TestClassifier_UnionsStoredAndSeed() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).
		Return([]domain.Currency{
			{CurrencyCode: "ARS", Kind: domain.Fiat},
			{CurrencyCode: "DOGE", Kind: domain.Crypto},
		}, nil).Once()

	classifier, err := suite.service.Classifier(ctx)

	suite.Require().NoError(err)
	suite.True(classifier.IsCrypto("DOGE"), "stored crypto currency")
	suite.True(classifier.IsCrypto("BTC"), "seed ticker works before any admin entry")
	suite.False(classifier.IsCrypto("ARS"))
	suite.False(classifier.IsCrypto("USD"))
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "sol",
		Symbol:       "S",
		Name:         "Solana",
		Kind:         "CRYPTO",
		Precision:    9,
	}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("SOL", currency.CurrencyCode)
	suite.Equal(domain.Crypto, currency.Kind)
	suite.Equal(creatorUserID, currency.CreatedBy)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidKind() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "XAU",
		Symbol:       "oz",
		Name:         "Gold",
		Kind:         "COMMODITY",
	}

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Uppercases() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ARS").
		Return(&domain.Currency{CurrencyCode: "ARS"}, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ars")

	suite.Require().NoError(err)
	suite.Equal("ARS", currency.CurrencyCode)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
