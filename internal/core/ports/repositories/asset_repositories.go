package repositories

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// AssetReader defines read operations for fixed asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific fixed asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets retrieves a company's assets, optionally filtered by status,
	// ordered by asset number.
	ListAssets(ctx context.Context, companyID string, status *domain.AssetStatus) ([]domain.FixedAsset, error)

	// ListDepreciableAssets retrieves the assets eligible for depreciation in a
	// period: acquired on or before the period end and not disposed before the
	// period end. Ordered by asset number.
	ListDepreciableAssets(ctx context.Context, companyID string, periodEnd time.Time) ([]domain.FixedAsset, error)
}

// AssetWriter defines write operations for fixed asset data
type AssetWriter interface {
	// SaveAsset persists a new fixed asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error

	// UpdateAssetDisposal records the terminal disposal state of an asset.
	UpdateAssetDisposal(ctx context.Context, assetID string, status domain.AssetStatus, disposalDate time.Time, disposalEntryID *string, userID string, now time.Time) error
}

// AssetRepositoryFacade combines all fixed-asset repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
