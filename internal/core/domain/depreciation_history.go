package domain

import "github.com/shopspring/decimal"

// DepreciationHistory is the write-once-per-period ledger of posted
// depreciation. At most one row exists per (asset, period); once a row carries
// an entry reference, recomputation must return the stored amount unchanged.
type DepreciationHistory struct {
	HistoryID string          `json:"historyID"` // Primary Key (e.g., UUID)
	AssetID   string          `json:"assetID"`   // FK -> fixed_assets.asset_id (cascade)
	PeriodID  string          `json:"periodID"`  // FK -> fiscal_periods.period_id
	Amount    decimal.Decimal `json:"amount"`
	EntryID   *string         `json:"entryID"` // Nullable FK -> journal_entries (restrict)
	AuditFields
}
