package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/core/services"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockRateSvc       *MockExchangeRateReaderSvc
	mockCurrencySvc   *MockCurrencyService
	service           portssvc.ReportingSvcFacade
	userID            string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockRateSvc = new(MockExchangeRateReaderSvc)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockRateSvc, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()

	suite.mockCurrencySvc.On("Classifier", mock.Anything).
		Return(conversion.NewStaticClassifier(conversion.DefaultCryptoTickers...), nil).Maybe()
	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Kind: domain.Fiat, Precision: 2}, nil).Maybe()
}

func (suite *ReportingServiceTestSuite) TestWealthSummary_SumsInUSDPivot() {
	ctx := context.Background()
	ars := rateRow("ARS", domain.RateTypeBlue, 1415)
	btc := rateRow("BTC", domain.RateTypeOfficial, 50000)

	suite.mockReportingRepo.On("SumLatestBalancesByCurrency", ctx, suite.userID).
		Return([]domain.CurrencyBalance{
			{CurrencyCode: "ARS", Balance: decimal.NewFromInt(1415)},
			{CurrencyCode: "BTC", Balance: decimal.NewFromInt(1)},
			{CurrencyCode: "USD", Balance: decimal.NewFromInt(100)},
		}, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "ARS", suite.userID).Return(&ars, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "BTC", suite.userID).Return(&btc, nil).Once()

	resp, err := suite.service.GetWealthSummary(ctx, suite.userID, "USD")

	suite.Require().NoError(err)
	// 1415 ARS / 1415 = 1, 1 BTC * 50000 = 50000, USD passes through.
	suite.True(resp.TotalInUSD.Equal(decimal.NewFromInt(50101)))
	suite.True(resp.TotalInHome.Equal(decimal.NewFromInt(50101)))
	suite.Equal("USD", resp.HomeCurrency)
	suite.Empty(resp.MissingRates)
	suite.Len(resp.Lines, 3)
	suite.Equal("$50,101.00", resp.DisplayTotal)
}

func (suite *ReportingServiceTestSuite) TestWealthSummary_MissingRateDegradesToZero() {
	ctx := context.Background()

	suite.mockReportingRepo.On("SumLatestBalancesByCurrency", ctx, suite.userID).
		Return([]domain.CurrencyBalance{
			{CurrencyCode: "VES", Balance: decimal.NewFromInt(100000)},
			{CurrencyCode: "USD", Balance: decimal.NewFromInt(50)},
		}, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "VES", suite.userID).
		Return(nil, apperrors.NewNotFoundError("no rates available for currency VES")).Once()

	resp, err := suite.service.GetWealthSummary(ctx, suite.userID, "USD")

	// The dashboard never fails on a rate gap: the currency contributes
	// zero and is reported.
	suite.Require().NoError(err)
	suite.True(resp.TotalInUSD.Equal(decimal.NewFromInt(50)))
	suite.Equal([]string{"VES"}, resp.MissingRates)
}

func (suite *ReportingServiceTestSuite) TestWealthSummary_HomeCurrencyConversion() {
	ctx := context.Background()
	ars := rateRow("ARS", domain.RateTypeBlue, 1415)

	suite.mockReportingRepo.On("SumLatestBalancesByCurrency", ctx, suite.userID).
		Return([]domain.CurrencyBalance{
			{CurrencyCode: "USD", Balance: decimal.NewFromInt(10)},
		}, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "ARS", suite.userID).Return(&ars, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "ARS").
		Return(&domain.Currency{CurrencyCode: "ARS", Kind: domain.Fiat, Precision: 2}, nil).Maybe()

	resp, err := suite.service.GetWealthSummary(ctx, suite.userID, "ARS")

	suite.Require().NoError(err)
	suite.True(resp.TotalInUSD.Equal(decimal.NewFromInt(10)))
	// Fiat home currency multiplies on the way out of USD.
	suite.True(resp.TotalInHome.Equal(decimal.NewFromInt(14150)))
}

func (suite *ReportingServiceTestSuite) TestSpendingSummary_GroupsByCategory() {
	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	ars := rateRow("ARS", domain.RateTypeBlue, 1415)

	suite.mockReportingRepo.On("SumExpensesByCategory", ctx, suite.userID, from, to).
		Return([]domain.CategorySpend{
			{Category: "groceries", CurrencyCode: "ARS", Amount: decimal.NewFromInt(141500)},
			{Category: "groceries", CurrencyCode: "USD", Amount: decimal.NewFromInt(20)},
			{Category: "transport", CurrencyCode: "USD", Amount: decimal.NewFromInt(15)},
		}, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "ARS", suite.userID).Return(&ars, nil).Once()

	resp, err := suite.service.GetSpendingSummary(ctx, suite.userID, from, to, "USD")

	suite.Require().NoError(err)
	// 141500/1415 = 100 USD, plus 35 USD spent directly.
	suite.True(resp.TotalInUSD.Equal(decimal.NewFromInt(135)))
	suite.Len(resp.Lines, 3)
	suite.Empty(resp.MissingRates)
}

func (suite *ReportingServiceTestSuite) TestSpendingSummary_MissingRatesDeduplicated() {
	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	suite.mockReportingRepo.On("SumExpensesByCategory", ctx, suite.userID, from, to).
		Return([]domain.CategorySpend{
			{Category: "groceries", CurrencyCode: "VES", Amount: decimal.NewFromInt(100)},
			{Category: "transport", CurrencyCode: "VES", Amount: decimal.NewFromInt(200)},
		}, nil).Once()
	suite.mockRateSvc.On("GetDefaultRate", ctx, "VES", suite.userID).
		Return(nil, apperrors.NewNotFoundError("no rates available for currency VES")).Twice()

	resp, err := suite.service.GetSpendingSummary(ctx, suite.userID, from, to, "USD")

	suite.Require().NoError(err)
	suite.True(resp.TotalInUSD.IsZero())
	suite.Equal([]string{"VES"}, resp.MissingRates)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
