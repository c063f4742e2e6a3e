package repositories

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines associated with a single entry ID.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves a paginated list of entries for a company using
	// token-based pagination. Returns the entries, a token for the next page,
	// and an error.
	ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// SaveEntry persists an entry and its lines atomically, applying the given
	// net balance changes to the affected accounts in the same transaction.
	// The entry's fiscal period is re-checked under a shared row lock inside
	// the transaction; a period closed concurrently yields
	// apperrors.ErrPeriodClosed and nothing is written.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error

	// UpdateEntryStatusAndLinks updates the status and reversal linkage of an entry.
	UpdateEntryStatusAndLinks(ctx context.Context, entryID string, status domain.EntryStatus, reversingEntryID *string, updatedBy string, updatedAt time.Time) error

	// DeleteEntry removes an entry and its lines, rolling the account balance
	// effects back, all in one transaction. Callers must have verified the
	// entry is unreferenced; the RESTRICT constraints are the last line of
	// defense and surface as apperrors.ErrEntryReferenced.
	DeleteEntry(ctx context.Context, entryID string, balanceChanges map[string]decimal.Decimal) error
}

// LedgerBalanceReader defines balance aggregation over posted lines.
type LedgerBalanceReader interface {
	// SumLinesByAccount returns the debit and credit totals of posted lines
	// against the account with entry date <= asOf.
	SumLinesByAccount(ctx context.Context, accountID string, asOf time.Time) (debitTotal, creditTotal decimal.Decimal, err error)

	// CountEntryReferences counts fixed asset and depreciation history rows
	// that reference the entry. A non-zero count makes the entry undeletable.
	CountEntryReferences(ctx context.Context, entryID string) (int, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LedgerBalanceReader
}
