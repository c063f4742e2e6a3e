package services

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AssetSvcFacade defines operations on the fixed asset ledger.
type AssetSvcFacade interface {
	RegisterAsset(ctx context.Context, companyID string, req dto.RegisterAssetRequest, creatorUserID string) (*domain.FixedAsset, error)
	GetAssetByID(ctx context.Context, companyID string, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context, companyID string, status *domain.AssetStatus) ([]domain.FixedAsset, error)

	// AnnualDepreciation computes the full-year depreciation amount for the
	// asset's method, rounded half-up to the currency precision. Methods
	// without a specified formula fail with apperrors.ErrUnsupportedMethod.
	AnnualDepreciation(asset *domain.FixedAsset) (decimal.Decimal, error)

	// BookValue is acquisition cost minus depreciation recorded for periods
	// ending on or before asOf.
	BookValue(ctx context.Context, companyID string, assetID string, asOf time.Time) (decimal.Decimal, error)

	// DisposeAsset transitions an active asset to DISPOSED or SOLD. Terminal.
	DisposeAsset(ctx context.Context, companyID string, assetID string, req dto.DisposeAssetRequest, userID string) (*domain.FixedAsset, error)
}
