package domain

import "github.com/shopspring/decimal"

// DepreciationPlanRow is the per-asset result of a depreciation plan.
type DepreciationPlanRow struct {
	AssetID         string             `json:"assetID"`
	AssetNumber     string             `json:"assetNumber"`
	AssetName       string             `json:"assetName"`
	AccountName     string             `json:"accountName"`
	AcquisitionDate string             `json:"acquisitionDate"`
	AcquisitionCost decimal.Decimal    `json:"acquisitionCost"`
	UsefulLifeYears int                `json:"usefulLifeYears"`
	Method          DepreciationMethod `json:"method"`
	// AnnualAmount is the full-year depreciation before pro-ration.
	AnnualAmount decimal.Decimal `json:"annualAmount"`
	// MonthsInPeriod is the number of whole months the asset was in use
	// during the period.
	MonthsInPeriod int `json:"monthsInPeriod"`
	// PeriodAmount is the amount proposed (or already recorded) for the period.
	PeriodAmount decimal.Decimal `json:"periodAmount"`
	// CumulativeAmount includes PeriodAmount.
	CumulativeAmount decimal.Decimal `json:"cumulativeAmount"`
	BookValue        decimal.Decimal `json:"bookValue"`
	// AlreadyRecorded marks rows whose amount came from the history store
	// rather than recomputation.
	AlreadyRecorded bool `json:"alreadyRecorded"`
}

// DepreciationPlan is the read-only proposal produced by the adjustment
// calculator. It never posts anything.
type DepreciationPlan struct {
	PeriodID          string                `json:"periodID"`
	CompanyID         string                `json:"companyID"`
	Rows              []DepreciationPlanRow `json:"rows"`
	TotalDepreciation decimal.Decimal       `json:"totalDepreciation"`
	HasUnrecorded     bool                  `json:"hasUnrecorded"`
}

// ReceivableBalance is one receivable account's period-end balance feeding the
// allowance calculation.
type ReceivableBalance struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// AllowancePlan is the proposed allowance-for-doubtful-accounts adjustment.
// EntryAmount is the absolute difference between the required allowance and
// the previous balance; IsReversal signals the sides must be swapped.
type AllowancePlan struct {
	PeriodID          string              `json:"periodID"`
	CompanyID         string              `json:"companyID"`
	Receivables       []ReceivableBalance `json:"receivables"`
	TotalReceivables  decimal.Decimal     `json:"totalReceivables"`
	AllowanceRate     decimal.Decimal     `json:"allowanceRate"`
	RequiredAllowance decimal.Decimal     `json:"requiredAllowance"`
	PreviousAllowance decimal.Decimal     `json:"previousAllowance"`
	EntryAmount       decimal.Decimal     `json:"entryAmount"`
	IsReversal        bool                `json:"isReversal"`
}

// ReconciliationWarning surfaces a posted-but-unlinked condition: the
// adjustment entry committed but the depreciation history record for one
// asset failed afterwards. The monetary effect is already in the ledger, so
// this is a report entry for manual review, not an error.
type ReconciliationWarning struct {
	AssetID  string `json:"assetID"`
	PeriodID string `json:"periodID"`
	EntryID  string `json:"entryID"`
	Reason   string `json:"reason"`
}
