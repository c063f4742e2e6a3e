package services

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines the ledger core: validated, atomic entry posting and
// point-in-time balances.
type LedgerSvcFacade interface {
	// PostEntry validates and durably commits a journal entry draft.
	// See apperrors for the validation and referential error taxonomy.
	PostEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves a posted entry with its lines.
	GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries for the company.
	ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// Balance returns the account's balance on its normal side over posted
	// entries dated on or before asOf.
	Balance(ctx context.Context, companyID string, accountID string, asOf time.Time) (decimal.Decimal, error)

	// ReverseEntry posts a mirror entry and marks the original REVERSED.
	ReverseEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error)

	// DeleteEntry removes an unreferenced entry. Entries referenced by fixed
	// assets or depreciation history fail with apperrors.ErrEntryReferenced.
	DeleteEntry(ctx context.Context, companyID string, entryID string, userID string) error
}
