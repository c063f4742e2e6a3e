package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus for DB storage.
type EntryStatus string

// EntryKind mirrors domain.EntryKind for DB storage.
type EntryKind string

// JournalEntry represents a row in the journal_entries table.
type JournalEntry struct {
	EntryID         string      `db:"entry_id"`
	CompanyID       string      `db:"company_id"`
	PeriodID        string      `db:"period_id"`
	EntryDate       time.Time   `db:"entry_date"`
	Kind            EntryKind   `db:"kind"`
	Memo            string      `db:"memo"`
	Status          EntryStatus `db:"status"`
	OriginalEntryID *string     `db:"original_entry_id"`
	AuditFields
}

// JournalLine represents a row in the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Side      string          `db:"side"`
	Amount    decimal.Decimal `db:"amount"`
	Notes     string          `db:"notes"`
	AuditFields
}
