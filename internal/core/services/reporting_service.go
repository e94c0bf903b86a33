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
	"github.com/centavohq/centavo_backend/internal/utils"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// reportingService is the aggregation consumer glue: it sums per-currency
// totals exclusively in the USD pivot and only then converts into the
// user's home currency for display. Raw amounts are never added across
// currencies. A currency with no resolvable rate contributes zero and is
// reported in MissingRates rather than failing the dashboard.
type reportingService struct {
	reportingRepo   portsrepo.ReportingRepository
	rateService     portssvc.ExchangeRateReaderSvc
	currencyService portssvc.CurrencyReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	rateService portssvc.ExchangeRateReaderSvc,
	currencyService portssvc.CurrencyReaderSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:   reportingRepo,
		rateService:     rateService,
		currencyService: currencyService,
	}
}

// GetWealthSummary aggregates the user's latest snapshot balances.
func (s *reportingService) GetWealthSummary(ctx context.Context, userID, homeCurrency string) (*dto.WealthSummaryResponse, error) {
	homeCurrency = strings.ToUpper(homeCurrency)
	if homeCurrency == "" {
		homeCurrency = conversion.CurrencyUSD
	}

	balances, err := s.reportingRepo.SumLatestBalancesByCurrency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wealth balances: %w", err)
	}

	engine, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.WealthSummaryResponse{HomeCurrency: homeCurrency}
	totalUSD := decimal.Zero
	for _, b := range balances {
		rate, missing, err := s.lookupRate(ctx, b.CurrencyCode, userID)
		if err != nil {
			return nil, err
		}
		if missing {
			resp.MissingRates = append(resp.MissingRates, b.CurrencyCode)
		}

		usd := engine.ToUSD(b.Balance, b.CurrencyCode, rate)
		totalUSD = totalUSD.Add(usd)
		resp.Lines = append(resp.Lines, dto.WealthLine{
			CurrencyCode: b.CurrencyCode,
			Balance:      b.Balance,
			BalanceInUSD: usd,
			Display:      s.display(ctx, usd, conversion.CurrencyUSD),
		})
	}
	resp.TotalInUSD = totalUSD

	homeRate, missingHome, err := s.lookupRate(ctx, homeCurrency, userID)
	if err != nil {
		return nil, err
	}
	if missingHome {
		resp.MissingRates = append(resp.MissingRates, homeCurrency)
	}
	resp.TotalInHome = engine.FromUSD(totalUSD, homeCurrency, homeRate)
	resp.DisplayTotal = s.display(ctx, resp.TotalInHome, homeCurrency)
	resp.MissingRates = lo.Uniq(resp.MissingRates)

	return resp, nil
}

// GetSpendingSummary aggregates the user's expenses for the period.
func (s *reportingService) GetSpendingSummary(ctx context.Context, userID string, from, to time.Time, homeCurrency string) (*dto.SpendingSummaryResponse, error) {
	homeCurrency = strings.ToUpper(homeCurrency)
	if homeCurrency == "" {
		homeCurrency = conversion.CurrencyUSD
	}

	spends, err := s.reportingRepo.SumExpensesByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load spending totals: %w", err)
	}

	engine, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.SpendingSummaryResponse{HomeCurrency: homeCurrency}
	totalUSD := decimal.Zero
	for _, spend := range spends {
		rate, missing, err := s.lookupRate(ctx, spend.CurrencyCode, userID)
		if err != nil {
			return nil, err
		}
		if missing {
			resp.MissingRates = append(resp.MissingRates, spend.CurrencyCode)
		}

		usd := engine.ToUSD(spend.Amount, spend.CurrencyCode, rate)
		totalUSD = totalUSD.Add(usd)
		resp.Lines = append(resp.Lines, dto.SpendingLine{
			Category:     spend.Category,
			CurrencyCode: spend.CurrencyCode,
			Amount:       spend.Amount,
			AmountInUSD:  usd,
		})
	}
	resp.TotalInUSD = totalUSD

	homeRate, missingHome, err := s.lookupRate(ctx, homeCurrency, userID)
	if err != nil {
		return nil, err
	}
	if missingHome {
		resp.MissingRates = append(resp.MissingRates, homeCurrency)
	}
	resp.TotalInHome = engine.FromUSD(totalUSD, homeCurrency, homeRate)
	resp.MissingRates = lo.Uniq(resp.MissingRates)

	return resp, nil
}

func (s *reportingService) engine(ctx context.Context) (conversion.Engine, error) {
	classifier, err := s.currencyService.Classifier(ctx)
	if err != nil {
		return conversion.Engine{}, fmt.Errorf("failed to build conversion engine: %w", err)
	}
	return conversion.NewEngine(classifier), nil
}

// lookupRate resolves the default rate for a currency. USD needs no rate.
// A missing rate is not an error here: conversion degrades to zero and the
// caller records the gap.
func (s *reportingService) lookupRate(ctx context.Context, currencyCode, userID string) (decimal.Decimal, bool, error) {
	if currencyCode == conversion.CurrencyUSD {
		return decimal.NewFromInt(1), false, nil
	}
	rate, err := s.rateService.GetDefaultRate(ctx, currencyCode, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, true, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to resolve rate for %s: %w", currencyCode, err)
	}
	return rate.Rate, false, nil
}

func (s *reportingService) display(ctx context.Context, amount decimal.Decimal, currencyCode string) string {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		currency = &domain.Currency{CurrencyCode: currencyCode, Kind: domain.Fiat, Precision: 2}
	}
	return utils.FormatDisplayAmount(amount, *currency)
}
