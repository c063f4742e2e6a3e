package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects the formula used to depreciate an asset.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

// AssetStatus tracks the lifecycle of a fixed asset. DISPOSED and SOLD are
// terminal.
type AssetStatus string

const (
	AssetActive   AssetStatus = "ACTIVE"
	AssetDisposed AssetStatus = "DISPOSED"
	AssetSold     AssetStatus = "SOLD"
)

// FixedAsset is a depreciable asset owned by one company. It is created on
// acquisition and mutated only by depreciation postings (via history records)
// and by disposal.
type FixedAsset struct {
	AssetID            string             `json:"assetID"`     // Primary Key (e.g., UUID)
	CompanyID          string             `json:"companyID"`   // FK -> companies.company_id (Not Null)
	AssetNumber        string             `json:"assetNumber"` // Unique per company
	Name               string             `json:"name"`
	AccountID          string             `json:"accountID"` // FK -> accounts (must be type ASSET)
	AcquisitionDate    time.Time          `json:"acquisitionDate"`
	AcquisitionCost    decimal.Decimal    `json:"acquisitionCost"`
	AcquisitionEntryID *string            `json:"acquisitionEntryID"` // Nullable FK -> journal_entries
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeYears    int                `json:"usefulLifeYears"` // > 0
	ResidualValue      decimal.Decimal    `json:"residualValue"`   // 0 <= residual < cost
	Status             AssetStatus        `json:"status"`
	DisposalDate       *time.Time         `json:"disposalDate"`    // Set on disposal
	DisposalEntryID    *string            `json:"disposalEntryID"` // Nullable FK -> journal_entries
	AuditFields
}

// DepreciableBase is the total amount the asset can ever be depreciated by.
func (a FixedAsset) DepreciableBase() decimal.Decimal {
	return a.AcquisitionCost.Sub(a.ResidualValue)
}
