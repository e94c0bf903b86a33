package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/shopspring/decimal"
)

// snapshotRepairService scans historical asset snapshots for the known
// multiply/divide inversion corruption. A corrupted row's stored USD value
// was computed with the rate applied in the wrong direction, which for
// typical fiat rates produces values orders of magnitude too large; the
// flag factor encodes that "orders of magnitude" heuristic.
type snapshotRepairService struct {
	snapshotRepo    portsrepo.SnapshotRepositoryFacade
	rateRepo        portsrepo.ExchangeRateReader
	currencyService portssvc.CurrencyReaderSvc
	flagFactor      decimal.Decimal
}

// NewSnapshotRepairService creates a new snapshot repair service.
func NewSnapshotRepairService(
	snapshotRepo portsrepo.SnapshotRepositoryFacade,
	rateRepo portsrepo.ExchangeRateReader,
	currencyService portssvc.CurrencyReaderSvc,
	flagFactor int64,
) portssvc.SnapshotRepairSvc {
	return &snapshotRepairService{
		snapshotRepo:    snapshotRepo,
		rateRepo:        rateRepo,
		currencyService: currencyService,
		flagFactor:      decimal.NewFromInt(flagFactor),
	}
}

// RepairSnapshots recomputes the expected USD value of every non-USD
// snapshot from current rates and flags rows whose stored value exceeds
// the estimate by more than the flag factor. In dry-run mode nothing is
// written. Rows whose currency has no resolvable current rate are skipped
// and reported, never guessed at.
func (s *snapshotRepairService) RepairSnapshots(ctx context.Context, opts dto.RepairOptions) (*dto.RepairReport, error) {
	classifier, err := s.currencyService.Classifier(ctx)
	if err != nil {
		return nil, fmt.Errorf("repair scan failed: %w", err)
	}

	rates, err := s.currentRates(ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.ListSnapshots(ctx, opts.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("repair scan failed to load snapshots: %w", err)
	}

	report := &dto.RepairReport{Scanned: len(snapshots)}
	for _, snap := range snapshots {
		rate, ok := rates[snap.CurrencyCode]
		if !ok {
			report.Skipped++
			report.Lines = append(report.Lines, fmt.Sprintf(
				"SKIP %s %s %s: no current rate for %s",
				snap.SnapshotID, snap.SnapshotDate.Format("2006-01-02"), snap.CurrencyCode, snap.CurrencyCode))
			slog.WarnContext(ctx, "Repair skipping snapshot with unresolvable currency",
				slog.String("snapshot_id", snap.SnapshotID),
				slog.String("currency", snap.CurrencyCode))
			continue
		}

		estimated := estimateUSD(snap.Balance, snap.CurrencyCode, rate, classifier)
		if !snap.BalanceInUSD.GreaterThan(estimated.Mul(s.flagFactor)) {
			continue
		}

		report.Flagged++
		report.Lines = append(report.Lines, fmt.Sprintf(
			"FLAG %s %s %s: balance=%s storedUSD=%s estimatedUSD=%s",
			snap.SnapshotID, snap.SnapshotDate.Format("2006-01-02"), snap.CurrencyCode,
			snap.Balance, snap.BalanceInUSD, estimated))

		if opts.DryRun {
			continue
		}
		if err := s.snapshotRepo.UpdateSnapshotUSD(ctx, snap.SnapshotID, estimated, domain.SystemUserID); err != nil {
			return nil, fmt.Errorf("repair failed to update snapshot %s: %w", snap.SnapshotID, err)
		}
		report.Fixed++
	}

	slog.InfoContext(ctx, "Repair scan completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("flagged", report.Flagged),
		slog.Int("fixed", report.Fixed),
		slog.Int("skipped", report.Skipped),
		slog.Bool("dry_run", opts.DryRun),
	)
	return report, nil
}

// currentRates builds the currency -> current best rate map for every
// non-USD currency appearing in any snapshot. USD is pinned to 1. A
// currency without any stored rate is simply absent from the map.
func (s *snapshotRepairService) currentRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	currencies, err := s.snapshotRepo.ListSnapshotCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("repair scan failed to list currencies: %w", err)
	}

	rates := map[string]decimal.Decimal{conversion.CurrencyUSD: decimal.NewFromInt(1)}
	for _, currency := range currencies {
		all, err := s.rateRepo.ListRatesForCurrency(ctx, currency)
		if err != nil {
			return nil, fmt.Errorf("repair scan failed to load rates for %s: %w", currency, err)
		}
		if best := bestCurrentRate(all); best != nil {
			rates[currency] = best.Rate
		}
	}
	return rates, nil
}

// bestCurrentRate prefers blue, then official, then the first row in
// insertion order. This deliberately mirrors the anonymous tail of the
// default-rate cascade without depending on favorites.
func bestCurrentRate(rates []domain.ExchangeRate) *domain.ExchangeRate {
	if len(rates) == 0 {
		return nil
	}
	for _, wanted := range []string{domain.RateTypeBlue, domain.RateTypeOfficial} {
		for i := range rates {
			if rates[i].RateType == wanted {
				return &rates[i]
			}
		}
	}
	return &rates[0]
}

// estimateUSD recomputes what the stored USD value should have been.
// The direction branches on the same classifier the conversion engine
// uses: fiat balances divide by the rate, crypto balances multiply.
func estimateUSD(balance decimal.Decimal, currencyCode string, rate decimal.Decimal, classifier conversion.Classifier) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if classifier.IsCrypto(currencyCode) {
		return balance.Mul(rate).Round(conversion.USDPrecision)
	}
	return balance.Div(rate).Round(conversion.USDPrecision)
}
