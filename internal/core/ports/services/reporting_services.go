package services

import (
	"context"
	"time"

	"github.com/centavohq/centavo_backend/internal/dto"
)

// ReportingSvcFacade produces the cross-currency dashboard aggregates.
// All summation happens in the USD pivot; raw amounts are never added
// across currencies.
type ReportingSvcFacade interface {
	// GetWealthSummary aggregates the user's latest asset snapshot
	// balances into USD and the given home currency.
	GetWealthSummary(ctx context.Context, userID, homeCurrency string) (*dto.WealthSummaryResponse, error)

	// GetSpendingSummary aggregates the user's expenses for the period
	// into USD and the given home currency.
	GetSpendingSummary(ctx context.Context, userID string, from, to time.Time, homeCurrency string) (*dto.SpendingSummaryResponse, error)
}
