package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/centavohq/centavo_backend/internal/adapters/oracle"
	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/platform/ratelimit"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RateFeed is the outbound port to the external rate oracle.
type RateFeed interface {
	FetchSnapshot(ctx context.Context) (*oracle.Snapshot, error)
}

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	rateTypePattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
)

// rateSyncService ingests rate snapshots from the feed into the rate store.
type rateSyncService struct {
	feed       RateFeed
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	limiter    ratelimit.Limiter
	cooldown   time.Duration
	maxEntries int
}

// NewRateSyncService creates a new rate sync service. maxEntries caps the
// number of valid entries accepted from one payload; cooldown is the
// minimum gap between non-admin manual runs.
func NewRateSyncService(
	feed RateFeed,
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	limiter ratelimit.Limiter,
	cooldown time.Duration,
	maxEntries int,
) portssvc.RateSyncSvc {
	return &rateSyncService{
		feed:       feed,
		rateRepo:   rateRepo,
		limiter:    limiter,
		cooldown:   cooldown,
		maxEntries: maxEntries,
	}
}

// SyncExchangeRates fetches, validates, and upserts today's rates.
//
// The whole run fails atomically on fetch errors, an empty or oversized
// payload, or a write failure; individual malformed entries are skipped
// without aborting. Concurrent runs are safe: the upsert is keyed on the
// (date, currency, type) unique constraint, so a duplicate run is a no-op
// beyond redundant writes.
func (s *rateSyncService) SyncExchangeRates(ctx context.Context, opts dto.SyncOptions) (*dto.SyncResult, error) {
	if !opts.Admin {
		if err := s.checkTriggerAllowance(ctx, opts.ClientKey); err != nil {
			return nil, err
		}
	}

	snapshot, err := s.feed.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate sync fetch failed: %w", err)
	}

	rates, skipped := s.parseSnapshot(ctx, snapshot)
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: %d entries received, none valid", apperrors.ErrEmptyPayload, len(snapshot.Rates))
	}
	if len(rates) > s.maxEntries {
		return nil, fmt.Errorf("%w: %d valid entries, ceiling is %d", apperrors.ErrPayloadTooLarge, len(rates), s.maxEntries)
	}

	count, err := s.rateRepo.UpsertRates(ctx, rates)
	if err != nil {
		return nil, fmt.Errorf("rate sync write failed: %w", err)
	}

	slog.InfoContext(ctx, "Rate sync completed",
		slog.Int("synced", count),
		slog.Int("skipped", skipped),
		slog.String("feed_updated_at", snapshot.UpdatedAt),
	)

	return &dto.SyncResult{
		SyncedCount:  count,
		SkippedCount: skipped,
		FeedUpdated:  snapshot.UpdatedAt,
	}, nil
}

// checkTriggerAllowance enforces the per-caller trigger quota and the
// store-level resync cooldown for non-admin manual runs.
func (s *rateSyncService) checkTriggerAllowance(ctx context.Context, clientKey string) error {
	if s.limiter != nil && clientKey != "" {
		allowed, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			return fmt.Errorf("rate sync limiter check failed: %w", err)
		}
		if !allowed {
			return apperrors.ErrRateLimited
		}
	}

	lastSync, err := s.rateRepo.FindLatestSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("rate sync cooldown check failed: %w", err)
	}
	if lastSync != nil && time.Since(*lastSync) < s.cooldown {
		return fmt.Errorf("%w: last sync at %s", apperrors.ErrSyncCooldown, lastSync.UTC().Format(time.RFC3339))
	}
	return nil
}

// parseSnapshot validates and normalizes feed entries into rate rows dated
// today at UTC midnight. Invalid entries are skipped, never fatal.
func (s *rateSyncService) parseSnapshot(ctx context.Context, snapshot *oracle.Snapshot) ([]domain.ExchangeRate, int) {
	today := domain.NormalizeRateDate(time.Now())
	now := time.Now()
	skipped := 0

	keys := lo.Keys(snapshot.Rates)
	sort.Strings(keys)

	rates := make([]domain.ExchangeRate, 0, len(keys))
	for _, key := range keys {
		currencyCode, rateType := splitRateKey(key)
		rate, ok := numericRate(snapshot.Rates[key])
		if !ok || rate.LessThanOrEqual(decimal.Zero) ||
			!currencyPattern.MatchString(currencyCode) || !rateTypePattern.MatchString(rateType) ||
			rateType == domain.RateTypeDefault {
			slog.DebugContext(ctx, "Skipping invalid rate entry", slog.String("key", key))
			skipped++
			continue
		}

		rates = append(rates, domain.ExchangeRate{
			ExchangeRateID: uuid.NewString(),
			RateDate:       today,
			CurrencyCode:   currencyCode,
			RateType:       rateType,
			Rate:           rate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.SystemUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.SystemUserID,
			},
		})
	}
	return rates, skipped
}

// splitRateKey splits a feed key into currency and rate type. A bare
// currency code implies type "official"; otherwise everything after the
// first underscore is the type, underscores included.
func splitRateKey(key string) (string, string) {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return strings.ToUpper(key), domain.RateTypeOfficial
	}
	return strings.ToUpper(parts[0]), strings.ToLower(strings.Join(parts[1:], "_"))
}

// numericRate coerces an untyped feed value into a decimal, rejecting
// non-numbers, NaN, and infinities.
func numericRate(value any) (decimal.Decimal, bool) {
	f, ok := value.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
