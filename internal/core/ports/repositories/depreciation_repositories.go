package repositories

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepreciationReader defines read operations for depreciation history data
type DepreciationReader interface {
	// FindByAssetAndPeriod retrieves the history row for (asset, period).
	// Returns apperrors.ErrNotFound when no row exists. This lookup is the
	// idempotence check consulted before recomputing depreciation.
	FindByAssetAndPeriod(ctx context.Context, assetID string, periodID string) (*domain.DepreciationHistory, error)

	// ListByAsset retrieves all history rows for an asset ordered by period start.
	ListByAsset(ctx context.Context, assetID string) ([]domain.DepreciationHistory, error)

	// SumThrough sums history amounts for an asset over periods whose end date
	// is on or before asOf.
	SumThrough(ctx context.Context, assetID string, asOf time.Time) (decimal.Decimal, error)
}

// DepreciationWriter defines write operations for depreciation history data
type DepreciationWriter interface {
	// SaveHistory persists a history row. The (asset, period) uniqueness
	// constraint is the concurrency guard against duplicate adjustment
	// postings: race losers get apperrors.ErrDuplicatePeriodRecord, never a
	// silent overwrite.
	SaveHistory(ctx context.Context, history domain.DepreciationHistory) error
}

// DepreciationRepositoryFacade combines the depreciation history interfaces
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
