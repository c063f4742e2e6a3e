package domain

import "time"

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// EntryKind distinguishes ordinary postings from period-end bookkeeping.
type EntryKind string

const (
	// Normal is an ordinary in-period transaction.
	Normal EntryKind = "NORMAL"
	// Adjustment is a period-end adjusting entry (depreciation, allowances),
	// dated exactly at the fiscal period's end.
	Adjustment EntryKind = "ADJUSTMENT"
	// Closing is a period-end closing entry, also dated at the period end.
	Closing EntryKind = "CLOSING"
)

// EntryKindPolicy describes what an entry kind permits. Validation consults
// this table instead of scattering per-kind conditionals.
type EntryKindPolicy struct {
	// AllowsAdjustmentOnlyAccounts permits lines against accounts flagged
	// adjustment-only.
	AllowsAdjustmentOnlyAccounts bool
	// RequiresPeriodEndDate forces the entry date to equal the fiscal
	// period's end date. Kinds without it require the date to fall inside
	// the period instead.
	RequiresPeriodEndDate bool
}

var entryKindPolicies = map[EntryKind]EntryKindPolicy{
	Normal:     {AllowsAdjustmentOnlyAccounts: false, RequiresPeriodEndDate: false},
	Adjustment: {AllowsAdjustmentOnlyAccounts: true, RequiresPeriodEndDate: true},
	Closing:    {AllowsAdjustmentOnlyAccounts: true, RequiresPeriodEndDate: true},
}

// PolicyForKind returns the validation policy for an entry kind. The second
// return is false for unknown kinds.
func PolicyForKind(kind EntryKind) (EntryKindPolicy, bool) {
	p, ok := entryKindPolicies[kind]
	return p, ok
}

// JournalEntry represents a single, balanced financial event composed of
// debit and credit lines. Posted entries are immutable except for reversal,
// which produces a new linked entry.
type JournalEntry struct {
	EntryID         string       `json:"entryID"`   // Primary Key (e.g., UUID)
	CompanyID       string       `json:"companyID"` // FK -> companies.company_id (Not Null)
	PeriodID        string       `json:"periodID"`  // FK -> fiscal_periods.period_id (Not Null)
	Date            time.Time    `json:"date"`      // Date the event occurred
	Kind            EntryKind    `json:"kind"`
	Memo            string       `json:"memo"` // Nullable user description
	Status          EntryStatus  `json:"status"`
	OriginalEntryID *string      `json:"originalEntryID"` // Set on reversal entries
	Lines           []JournalLine `json:"lines,omitempty"`
	AuditFields
}
