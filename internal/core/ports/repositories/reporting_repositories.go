package repositories

import (
	"context"
	"time"

	"github.com/centavohq/centavo_backend/internal/core/domain"
)

// ReportingRepository provides the aggregate queries consumed by the
// dashboard services. All sums are per-currency in native units; the
// reporting service is responsible for pivoting them through USD.
type ReportingRepository interface {
	// SumLatestBalancesByCurrency sums each account's most recent snapshot
	// balance, grouped by currency.
	SumLatestBalancesByCurrency(ctx context.Context, userID string) ([]domain.CurrencyBalance, error)

	// SumExpensesByCategory sums expenses in the period grouped by
	// (category, currency).
	SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error)
}
