package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/kessan-app/kessan_backend/internal/utils/accounting"
)

// ledgerService validates and posts journal entries against accounts and
// fiscal periods, and computes point-in-time account balances.
type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	periodSvc   portssvc.PeriodSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, periodSvc portssvc.PeriodSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateDraftShape checks the side and balance invariants of an entry draft.
func (s *ledgerService) validateDraftShape(req dto.CreateEntryRequest) error {
	debitCount, creditCount := 0, 0
	for _, line := range req.Lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, line.AccountID)
		}
		if line.Side == domain.Debit {
			debitCount++
		} else {
			creditCount++
		}
	}
	if debitCount == 0 || creditCount == 0 {
		return apperrors.ErrEmptyEntrySide
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range req.Lines {
		if line.Side == domain.Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	// Exact decimal equality, no rounding tolerance.
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalancedEntry, debits.String(), credits.String())
	}
	return nil
}

// validateDateForKind enforces the kind policy against the fiscal period.
func (s *ledgerService) validateDateForKind(kind domain.EntryKind, date time.Time, period *domain.FiscalPeriod) error {
	policy, ok := domain.PolicyForKind(kind)
	if !ok {
		return fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}
	if policy.RequiresPeriodEndDate {
		if !date.Equal(period.EndDate) {
			return fmt.Errorf("%w: %s entries must be dated at the period end %s, got %s",
				apperrors.ErrInvalidEntryDateForKind, kind, period.EndDate.Format("2006-01-02"), date.Format("2006-01-02"))
		}
		return nil
	}
	if !period.Contains(date) {
		return fmt.Errorf("%w: date %s is outside period %s..%s",
			apperrors.ErrInvalidEntryDateForKind, date.Format("2006-01-02"),
			period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02"))
	}
	return nil
}

// validateAccounts fetches the lines' accounts and enforces existence,
// activity, company ownership and the adjustment-only policy. Returns the
// account map for balance-change calculation.
func (s *ledgerService) validateAccounts(ctx context.Context, companyID string, kind domain.EntryKind, lines []dto.CreateLineRequest) (map[string]domain.Account, error) {
	policy, _ := domain.PolicyForKind(kind)

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}

	accounts, err := s.accountSvc.GetAccountByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", apperrors.ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, id)
		}
		if acc.AdjustmentOnly && !policy.AllowsAdjustmentOnlyAccounts {
			return nil, fmt.Errorf("%w: account %s on %s entry", apperrors.ErrAdjustmentAccountMisuse, id, kind)
		}
	}
	return accounts, nil
}

// balanceChangesFor nets the signed effect of lines per account.
func (s *ledgerService) balanceChangesFor(lines []domain.JournalLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(accounts))
	for _, line := range lines {
		acc, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("internal error: account %s missing during balance calculation", line.AccountID)
		}
		signed, err := accounting.CalculateSignedAmount(line, acc.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate signed amount: %w", err)
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signed)
	}
	return changes, nil
}

// PostEntry validates and durably commits a journal entry draft.
func (s *ledgerService) PostEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.validateDraftShape(req); err != nil {
		return nil, err
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, req.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal period %s: %w", req.PeriodID, err)
	}
	if period.Closed {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, period.PeriodID)
	}
	if err := s.validateDateForKind(req.Kind, req.Date, period); err != nil {
		return nil, err
	}

	accounts, err := s.validateAccounts(ctx, companyID, req.Kind, req.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Side:        lineReq.Side,
			Amount:      lineReq.Amount,
			Notes:       lineReq.Notes,
			AuditFields: audit,
		}
	}

	balanceChanges, err := s.balanceChangesFor(lines, accounts)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   companyID,
		PeriodID:    period.PeriodID,
		Date:        req.Date,
		Kind:        req.Kind,
		Memo:        req.Memo,
		Status:      domain.Posted,
		AuditFields: audit,
	}

	// SaveEntry is one transaction: entry, lines and balance updates commit
	// together or not at all, and the period is re-checked under lock so a
	// concurrent close wins or loses cleanly.
	if err := s.journalRepo.SaveEntry(ctx, entry, lines, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.Int("line_count", len(lines)))
	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves an entry and its lines.
func (s *ledgerService) GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		// Obscure existence across companies.
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries for the company.
func (s *ledgerService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, companyID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// Balance returns Σ on the account's normal side over posted entries dated on
// or before asOf. Deterministic for a fixed data snapshot.
func (s *ledgerService) Balance(ctx context.Context, companyID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountSvc.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	debitTotal, creditTotal, err := s.journalRepo.SumLinesByAccount(ctx, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum lines", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}

	if account.AccountType.NormalSideIsDebit() {
		return debitTotal.Sub(creditTotal), nil
	}
	return creditTotal.Sub(debitTotal), nil
}

// ReverseEntry posts a mirror of a previously posted entry and marks the
// original REVERSED. Reversal is the only legal mutation of a posted entry.
func (s *ledgerService) ReverseEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry status is %s, expected POSTED", apperrors.ErrConflict, original.Status)
	}
	if original.OriginalEntryID != nil {
		return nil, fmt.Errorf("%w: cannot reverse an entry that is already a reversal", apperrors.ErrConflict)
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, original.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal period %s: %w", original.PeriodID, err)
	}
	if period.Closed {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, period.PeriodID)
	}

	now := time.Now().UTC()
	newEntryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	reversingLines := make([]domain.JournalLine, len(original.Lines))
	for i, origLine := range original.Lines {
		reversingLines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     newEntryID,
			AccountID:   origLine.AccountID,
			Side:        origLine.Side.Opposite(),
			Amount:      origLine.Amount,
			Notes:       origLine.Notes,
			AuditFields: audit,
		}
	}

	accountIDs := make([]string, 0, len(reversingLines))
	for _, line := range reversingLines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for reversal: %w", err)
	}
	balanceChanges, err := s.balanceChangesFor(reversingLines, accounts)
	if err != nil {
		return nil, err
	}

	reversingEntry := domain.JournalEntry{
		EntryID:         newEntryID,
		CompanyID:       companyID,
		PeriodID:        original.PeriodID,
		Date:            original.Date,
		Kind:            original.Kind,
		Memo:            fmt.Sprintf("Reversal of entry: %s", original.Memo),
		Status:          domain.Posted,
		OriginalEntryID: &original.EntryID,
		AuditFields:     audit,
	}

	if err := s.journalRepo.SaveEntry(ctx, reversingEntry, reversingLines, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save reversing entry", slog.String("original_entry_id", entryID))
		return nil, fmt.Errorf("failed to save reversing entry: %w", err)
	}

	if err := s.journalRepo.UpdateEntryStatusAndLinks(ctx, original.EntryID, domain.Reversed, &newEntryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark original entry reversed",
			slog.String("original_entry_id", entryID), slog.String("reversing_entry_id", newEntryID))
		return nil, fmt.Errorf("failed to update original entry status: %w", err)
	}

	s.LogInfo(ctx, "Entry reversed", slog.String("reversing_entry_id", newEntryID))
	reversingEntry.Lines = reversingLines
	return &reversingEntry, nil
}

// DeleteEntry removes an entry that nothing references. Entries referenced by
// fixed assets or depreciation history are protected.
func (s *ledgerService) DeleteEntry(ctx context.Context, companyID string, entryID string, userID string) error {
	entry, err := s.GetEntryByID(ctx, companyID, entryID)
	if err != nil {
		return err
	}

	refs, err := s.journalRepo.CountEntryReferences(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count entry references", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to count entry references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: entry %s has %d references", apperrors.ErrEntryReferenced, entryID, refs)
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, entry.PeriodID)
	if err != nil {
		return fmt.Errorf("failed to resolve fiscal period %s: %w", entry.PeriodID, err)
	}
	if period.Closed {
		return fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, period.PeriodID)
	}

	accountIDs := make([]string, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for deletion: %w", err)
	}

	// Deleting rolls the balance effects back: negate every signed change.
	balanceChanges, err := s.balanceChangesFor(entry.Lines, accounts)
	if err != nil {
		return err
	}
	for id, change := range balanceChanges {
		balanceChanges[id] = change.Neg()
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID, balanceChanges); err != nil {
		if errors.Is(err, apperrors.ErrEntryReferenced) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}
