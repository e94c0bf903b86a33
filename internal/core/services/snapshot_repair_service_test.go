package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/core/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testFlagFactor = 10

type SnapshotRepairServiceTestSuite struct {
	suite.Suite
	mockSnapshotRepo *MockSnapshotRepository
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencySvc  *MockCurrencyService
	service          portssvc.SnapshotRepairSvc
}

func (suite *SnapshotRepairServiceTestSuite) SetupTest() {
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewSnapshotRepairService(suite.mockSnapshotRepo, suite.mockRateRepo, suite.mockCurrencySvc, testFlagFactor)

	suite.mockCurrencySvc.On("Classifier", mock.Anything).
		Return(conversion.NewStaticClassifier(conversion.DefaultCryptoTickers...), nil).Maybe()
}

func snapshotRow(currency string, balance, balanceUSD float64) domain.AssetSnapshot {
	return domain.AssetSnapshot{
		SnapshotID:   uuid.NewString(),
		AccountID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		CurrencyCode: currency,
		SnapshotDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Balance:      decimal.NewFromFloat(balance),
		BalanceInUSD: decimal.NewFromFloat(balanceUSD),
	}
}

func (suite *SnapshotRepairServiceTestSuite) expectRates(currency string, rates ...domain.ExchangeRate) {
	suite.mockSnapshotRepo.On("ListSnapshotCurrencies", mock.Anything).Return([]string{currency}, nil).Once()
	suite.mockRateRepo.On("ListRatesForCurrency", mock.Anything, currency).Return(rates, nil).Once()
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_BoundaryNotFlagged() {
	ctx := context.Background()
	// 5000 ARS at 1415 per USD estimates to 3.53 USD; the flag threshold
	// is 35.30. A stored value exactly at or below the threshold passes.
	suite.expectRates("ARS", rateRow("ARS", domain.RateTypeOfficial, 1415))
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snapshotRow("ARS", 5000, 35.0)}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true})

	suite.Require().NoError(err)
	suite.Equal(1, report.Scanned)
	suite.Equal(0, report.Flagged)
	suite.Equal(0, report.Skipped)
	suite.Empty(report.Lines)
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_CorruptedFiatFlagged() {
	ctx := context.Background()
	suite.expectRates("ARS", rateRow("ARS", domain.RateTypeOfficial, 1415))
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snapshotRow("ARS", 5000, 40.0)}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true})

	suite.Require().NoError(err)
	suite.Equal(1, report.Flagged)
	suite.Equal(0, report.Fixed)
	suite.Require().Len(report.Lines, 1)
	suite.Contains(report.Lines[0], "FLAG")
	suite.Contains(report.Lines[0], "estimatedUSD=3.53")
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "UpdateSnapshotUSD")
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_CryptoBranchMultiplies() {
	ctx := context.Background()
	// 0.5 BTC at 50000 USD per unit estimates to 25000; the stored value
	// looks like it was divided instead. 300000 > 25000*10 flags it.
	suite.expectRates("BTC", rateRow("BTC", domain.RateTypeOfficial, 50000))
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snapshotRow("BTC", 0.5, 300000)}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true})

	suite.Require().NoError(err)
	suite.Equal(1, report.Flagged)
	suite.Contains(report.Lines[0], "estimatedUSD=25000")
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_WriteModeFixes() {
	ctx := context.Background()
	snap := snapshotRow("ARS", 5000, 40.0)
	suite.expectRates("ARS", rateRow("ARS", domain.RateTypeOfficial, 1415))
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snap}, nil).Once()
	suite.mockSnapshotRepo.On("UpdateSnapshotUSD", ctx, snap.SnapshotID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromFloat(3.53)) }),
		domain.SystemUserID).Return(nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: false})

	suite.Require().NoError(err)
	suite.Equal(1, report.Flagged)
	suite.Equal(1, report.Fixed)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_SkipsUnresolvableCurrency() {
	ctx := context.Background()
	suite.expectRates("VES") // no rates stored for this currency
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snapshotRow("VES", 100, 5000)}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true})

	suite.Require().NoError(err)
	suite.Equal(1, report.Skipped)
	suite.Equal(0, report.Flagged)
	suite.Require().Len(report.Lines, 1)
	suite.Contains(report.Lines[0], "SKIP")
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "UpdateSnapshotUSD")
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_BluePreferredForEstimate() {
	ctx := context.Background()
	// With both types stored, the estimate uses blue. 5000/1000=5.00 via
	// official would flag storedUSD=45; 5000/1415=3.53 via blue also
	// flags, but the reported estimate must be the blue one.
	suite.expectRates("ARS",
		rateRow("ARS", domain.RateTypeOfficial, 1000),
		rateRow("ARS", domain.RateTypeBlue, 1415),
	)
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "").
		Return([]domain.AssetSnapshot{snapshotRow("ARS", 5000, 60.0)}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true})

	suite.Require().NoError(err)
	suite.Equal(1, report.Flagged)
	suite.Contains(report.Lines[0], "estimatedUSD=3.53")
}

func (suite *SnapshotRepairServiceTestSuite) TestRepair_CurrencyFilterPassedThrough() {
	ctx := context.Background()
	suite.expectRates("ARS", rateRow("ARS", domain.RateTypeOfficial, 1415))
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "ARS").
		Return([]domain.AssetSnapshot{}, nil).Once()

	report, err := suite.service.RepairSnapshots(ctx, dto.RepairOptions{DryRun: true, CurrencyCode: "ARS"})

	suite.Require().NoError(err)
	suite.Equal(0, report.Scanned)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func TestSnapshotRepairService(t *testing.T) {
	suite.Run(t, new(SnapshotRepairServiceTestSuite))
}
