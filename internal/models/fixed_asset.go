package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset represents a row in the fixed_assets table.
type FixedAsset struct {
	AssetID            string          `db:"asset_id"`
	CompanyID          string          `db:"company_id"`
	AssetNumber        string          `db:"asset_number"`
	Name               string          `db:"name"`
	AccountID          string          `db:"account_id"`
	AcquisitionDate    time.Time       `db:"acquisition_date"`
	AcquisitionCost    decimal.Decimal `db:"acquisition_cost"`
	AcquisitionEntryID *string         `db:"acquisition_entry_id"`
	DepreciationMethod string          `db:"depreciation_method"`
	UsefulLifeYears    int             `db:"useful_life_years"`
	ResidualValue      decimal.Decimal `db:"residual_value"`
	Status             string          `db:"status"`
	DisposalDate       *time.Time      `db:"disposal_date"`
	DisposalEntryID    *string         `db:"disposal_entry_id"`
	AuditFields
}

// DepreciationHistory represents a row in the depreciation_history table.
type DepreciationHistory struct {
	HistoryID string          `db:"history_id"`
	AssetID   string          `db:"asset_id"`
	PeriodID  string          `db:"period_id"`
	Amount    decimal.Decimal `db:"amount"`
	EntryID   *string         `db:"entry_id"`
	AuditFields
}
