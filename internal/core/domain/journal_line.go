package domain

import "github.com/shopspring/decimal"

// LineSide indicates whether a journal line is a Debit or a Credit.
type LineSide string

const (
	Debit  LineSide = "DEBIT"
	Credit LineSide = "CREDIT"
)

// Opposite returns the other side. Used when building reversal entries.
func (s LineSide) Opposite() LineSide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// JournalLine represents a single line item within a JournalEntry, affecting
// one account. Amounts are always positive; the side carries the direction.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (e.g., UUID)
	EntryID   string          `json:"entryID"`   // FK -> journal_entries.entry_id (Not Null)
	AccountID string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	Side      LineSide        `json:"side"`
	Amount    decimal.Decimal `json:"amount"` // Positive value; precise decimal
	Notes     string          `json:"notes"`  // Nullable
	AuditFields
}
