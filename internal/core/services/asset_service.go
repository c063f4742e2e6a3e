package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/kessan-app/kessan_backend/internal/utils/accounting"
)

// assetService provides fixed asset ledger operations.
type assetService struct {
	BaseService
	assetRepo        portsrepo.AssetRepositoryFacade
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	accountSvc       portssvc.AccountSvcFacade
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, depreciationRepo portsrepo.DepreciationRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
		accountSvc:       accountSvc,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// RegisterAsset validates and persists a new fixed asset in ACTIVE state.
func (s *assetService) RegisterAsset(ctx context.Context, companyID string, req dto.RegisterAssetRequest, creatorUserID string) (*domain.FixedAsset, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.AcquisitionCost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: acquisition cost must be positive", apperrors.ErrValidation)
	}
	if req.ResidualValue.IsNegative() || req.ResidualValue.GreaterThanOrEqual(req.AcquisitionCost) {
		return nil, fmt.Errorf("%w: residual value must satisfy 0 <= residual < cost", apperrors.ErrValidation)
	}

	account, err := s.accountSvc.GetAccountByID(ctx, companyID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset account %s: %w", req.AccountID, err)
	}
	if account.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: account %s has type %s, assets must link an ASSET account",
			apperrors.ErrValidation, req.AccountID, account.AccountType)
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:            uuid.NewString(),
		CompanyID:          companyID,
		AssetNumber:        req.AssetNumber,
		Name:               req.Name,
		AccountID:          req.AccountID,
		AcquisitionDate:    req.AcquisitionDate,
		AcquisitionCost:    req.AcquisitionCost,
		AcquisitionEntryID: req.AcquisitionEntryID,
		DepreciationMethod: req.DepreciationMethod,
		UsefulLifeYears:    req.UsefulLifeYears,
		ResidualValue:      req.ResidualValue,
		Status:             domain.AssetActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("company_id", companyID), slog.String("asset_number", req.AssetNumber))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	s.LogInfo(ctx, "Asset registered",
		slog.String("asset_id", asset.AssetID),
		slog.String("asset_number", asset.AssetNumber))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, companyID string, assetID string) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, companyID string, status *domain.AssetStatus) ([]domain.FixedAsset, error) {
	return s.assetRepo.ListAssets(ctx, companyID, status)
}

// AnnualDepreciation computes the full-year depreciation amount for the
// asset's method.
func (s *assetService) AnnualDepreciation(asset *domain.FixedAsset) (decimal.Decimal, error) {
	switch asset.DepreciationMethod {
	case domain.StraightLine:
		annual := asset.DepreciableBase().Div(decimal.NewFromInt(int64(asset.UsefulLifeYears)))
		return accounting.RoundHalfUp(annual), nil
	case domain.DecliningBalance:
		// Recognized but no rate table is defined for it yet.
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedMethod, asset.DepreciationMethod)
	default:
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedMethod, asset.DepreciationMethod)
	}
}

// BookValue is acquisition cost minus recorded depreciation through asOf.
func (s *assetService) BookValue(ctx context.Context, companyID string, assetID string, asOf time.Time) (decimal.Decimal, error) {
	asset, err := s.GetAssetByID(ctx, companyID, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	recorded, err := s.depreciationRepo.SumThrough(ctx, assetID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum depreciation history", slog.String("asset_id", assetID))
		return decimal.Zero, fmt.Errorf("failed to sum depreciation history: %w", err)
	}
	return asset.AcquisitionCost.Sub(recorded), nil
}

// DisposeAsset transitions an ACTIVE asset to its terminal status.
func (s *assetService) DisposeAsset(ctx context.Context, companyID string, assetID string, req dto.DisposeAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	asset, err := s.GetAssetByID(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetActive {
		return nil, fmt.Errorf("%w: asset %s is %s", apperrors.ErrAssetNotActive, assetID, asset.Status)
	}
	if req.DisposalDate.Before(asset.AcquisitionDate) {
		return nil, fmt.Errorf("%w: disposal date %s precedes acquisition date %s",
			apperrors.ErrValidation, req.DisposalDate.Format("2006-01-02"), asset.AcquisitionDate.Format("2006-01-02"))
	}

	now := time.Now().UTC()
	if err := s.assetRepo.UpdateAssetDisposal(ctx, assetID, req.Status, req.DisposalDate, req.DisposalEntryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to record asset disposal", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to record asset disposal: %w", err)
	}

	asset.Status = req.Status
	asset.DisposalDate = &req.DisposalDate
	asset.DisposalEntryID = req.DisposalEntryID
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	s.LogInfo(ctx, "Asset disposed",
		slog.String("asset_id", assetID),
		slog.String("status", string(req.Status)))
	return asset, nil
}
