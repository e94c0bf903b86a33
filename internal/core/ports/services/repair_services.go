package services

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/dto"
)

// SnapshotRepairSvc scans historical asset snapshots for USD values that
// look like they were computed by multiplying by the rate instead of
// dividing (or vice versa for crypto), and optionally rewrites them.
type SnapshotRepairSvc interface {
	// RepairSnapshots runs a scan. Dry-run mode reports without writing.
	RepairSnapshots(ctx context.Context, opts dto.RepairOptions) (*dto.RepairReport, error)
}
