package repositories

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SnapshotReader defines read operations for asset snapshots
type SnapshotReader interface {
	// ListSnapshots returns historical snapshots whose account currency is
	// not USD, optionally filtered to one currency code.
	ListSnapshots(ctx context.Context, currencyCode string) ([]domain.AssetSnapshot, error)

	// ListSnapshotCurrencies returns the distinct non-USD currency codes
	// appearing in any snapshot.
	ListSnapshotCurrencies(ctx context.Context) ([]string, error)
}

// SnapshotWriter defines write operations for asset snapshots
type SnapshotWriter interface {
	// UpdateSnapshotUSD overwrites the derived USD balance of one snapshot.
	UpdateSnapshotUSD(ctx context.Context, snapshotID string, balanceInUSD decimal.Decimal, updatedBy string) error
}

// SnapshotRepositoryFacade combines all snapshot-related repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
