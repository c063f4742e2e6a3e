package dto

import (
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAssetRequest defines the data needed to register a fixed asset.
type RegisterAssetRequest struct {
	AssetNumber        string                    `json:"assetNumber" validate:"required"`
	Name               string                    `json:"name" validate:"required"`
	AccountID          string                    `json:"accountID" validate:"required"`
	AcquisitionDate    time.Time                 `json:"acquisitionDate" validate:"required"`
	AcquisitionCost    decimal.Decimal           `json:"acquisitionCost" validate:"required"`
	AcquisitionEntryID *string                   `json:"acquisitionEntryID"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod" validate:"required,oneof=STRAIGHT_LINE DECLINING_BALANCE"`
	UsefulLifeYears    int                       `json:"usefulLifeYears" validate:"required,gt=0"`
	ResidualValue      decimal.Decimal           `json:"residualValue"`
}

// DisposeAssetRequest defines the data needed to dispose of an asset.
type DisposeAssetRequest struct {
	DisposalDate    time.Time          `json:"disposalDate" validate:"required"`
	DisposalEntryID *string            `json:"disposalEntryID"`
	Status          domain.AssetStatus `json:"status" validate:"required,oneof=DISPOSED SOLD"`
}

// AssetResponse defines the data returned for a fixed asset.
type AssetResponse struct {
	AssetID            string                    `json:"assetID"`
	CompanyID          string                    `json:"companyID"`
	AssetNumber        string                    `json:"assetNumber"`
	Name               string                    `json:"name"`
	AccountID          string                    `json:"accountID"`
	AcquisitionDate    time.Time                 `json:"acquisitionDate"`
	AcquisitionCost    decimal.Decimal           `json:"acquisitionCost"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeYears    int                       `json:"usefulLifeYears"`
	ResidualValue      decimal.Decimal           `json:"residualValue"`
	Status             domain.AssetStatus        `json:"status"`
	DisposalDate       *time.Time                `json:"disposalDate,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
}

// ToAssetResponse converts a domain.FixedAsset to AssetResponse DTO.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:            a.AssetID,
		CompanyID:          a.CompanyID,
		AssetNumber:        a.AssetNumber,
		Name:               a.Name,
		AccountID:          a.AccountID,
		AcquisitionDate:    a.AcquisitionDate,
		AcquisitionCost:    a.AcquisitionCost,
		DepreciationMethod: a.DepreciationMethod,
		UsefulLifeYears:    a.UsefulLifeYears,
		ResidualValue:      a.ResidualValue,
		Status:             a.Status,
		DisposalDate:       a.DisposalDate,
		CreatedAt:          a.CreatedAt,
	}
}
