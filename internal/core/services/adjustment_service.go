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
	"github.com/kessan-app/kessan_backend/internal/platform/config"
	"github.com/kessan-app/kessan_backend/internal/utils/accounting"
)

// adjustmentService derives period-end adjustment amounts (depreciation and
// the doubtful-accounts allowance) and applies them through the ledger.
type adjustmentService struct {
	BaseService
	assetRepo        portsrepo.AssetRepositoryFacade
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	assetSvc         portssvc.AssetSvcFacade
	accountSvc       portssvc.AccountSvcFacade
	periodSvc        portssvc.PeriodSvcFacade
	ledgerSvc        portssvc.LedgerSvcFacade
	cfg              *config.Config
}

// NewAdjustmentService creates a new AdjustmentService.
func NewAdjustmentService(
	assetRepo portsrepo.AssetRepositoryFacade,
	depreciationRepo portsrepo.DepreciationRepositoryFacade,
	assetSvc portssvc.AssetSvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	periodSvc portssvc.PeriodSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	cfg *config.Config,
) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
		assetSvc:         assetSvc,
		accountSvc:       accountSvc,
		periodSvc:        periodSvc,
		ledgerSvc:        ledgerSvc,
		cfg:              cfg,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

// monthsInPeriod counts the whole months the asset was in use during the
// period, capped at the period's own length. Assets acquired before the
// period start earn the full period.
func monthsInPeriod(asset domain.FixedAsset, period *domain.FiscalPeriod) int {
	months := accounting.WholeMonthsBetween(asset.AcquisitionDate, period.EndDate)
	if full := period.MonthCount(); months > full {
		months = full
	}
	return months
}

// planRowFor computes one asset's plan row. priorCumulative is the recorded
// depreciation for periods before this one.
func (s *adjustmentService) planRowFor(asset domain.FixedAsset, period *domain.FiscalPeriod, accountName string, annual decimal.Decimal, priorCumulative decimal.Decimal) domain.DepreciationPlanRow {
	months := monthsInPeriod(asset, period)
	periodAmount := accounting.ProRateByMonths(annual, months)

	// Never depreciate past cost minus residual. The period that reaches the
	// end of the useful life takes the exact remainder instead of the formula
	// amount, in either direction, so rounding on the annual amount cannot
	// leave cumulative depreciation short of the depreciable base.
	remaining := asset.DepreciableBase().Sub(priorCumulative)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	lastDayOfLife := asset.AcquisitionDate.AddDate(asset.UsefulLifeYears, 0, -1)
	if !period.EndDate.Before(lastDayOfLife) || periodAmount.GreaterThan(remaining) {
		periodAmount = remaining
	}

	cumulative := priorCumulative.Add(periodAmount)
	return domain.DepreciationPlanRow{
		AssetID:          asset.AssetID,
		AssetNumber:      asset.AssetNumber,
		AssetName:        asset.Name,
		AccountName:      accountName,
		AcquisitionDate:  asset.AcquisitionDate.Format("2006-01-02"),
		AcquisitionCost:  asset.AcquisitionCost,
		UsefulLifeYears:  asset.UsefulLifeYears,
		Method:           asset.DepreciationMethod,
		AnnualAmount:     annual,
		MonthsInPeriod:   months,
		PeriodAmount:     periodAmount,
		CumulativeAmount: cumulative,
		BookValue:        asset.AcquisitionCost.Sub(cumulative),
		AlreadyRecorded:  false,
	}
}

// PlanDepreciation computes the proposed (or already recorded) depreciation
// per eligible asset for the period. Read-only.
func (s *adjustmentService) PlanDepreciation(ctx context.Context, companyID string, periodID string) (*domain.DepreciationPlan, error) {
	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal period %s: %w", periodID, err)
	}

	assets, err := s.assetRepo.ListDepreciableAssets(ctx, companyID, period.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciable assets", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to list depreciable assets: %w", err)
	}

	plan := &domain.DepreciationPlan{
		PeriodID:          periodID,
		CompanyID:         companyID,
		Rows:              make([]domain.DepreciationPlanRow, 0, len(assets)),
		TotalDepreciation: decimal.Zero,
	}

	accountNames := make(map[string]string)
	for i := range assets {
		asset := assets[i]

		accountName, cached := accountNames[asset.AccountID]
		if !cached {
			account, err := s.accountSvc.GetAccountByID(ctx, companyID, asset.AccountID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve account for asset %s: %w", asset.AssetID, err)
			}
			accountName = account.Name
			accountNames[asset.AccountID] = accountName
		}

		annual, err := s.assetSvc.AnnualDepreciation(&asset)
		if err != nil {
			return nil, fmt.Errorf("asset %s (%s): %w", asset.AssetNumber, asset.AssetID, err)
		}

		history, err := s.depreciationRepo.FindByAssetAndPeriod(ctx, asset.AssetID, periodID)
		switch {
		case err == nil:
			// Already recorded for this period: report the stored amount, never
			// recompute it.
			cumulative, sumErr := s.depreciationRepo.SumThrough(ctx, asset.AssetID, period.EndDate)
			if sumErr != nil {
				return nil, fmt.Errorf("failed to sum depreciation history for asset %s: %w", asset.AssetID, sumErr)
			}
			row := domain.DepreciationPlanRow{
				AssetID:          asset.AssetID,
				AssetNumber:      asset.AssetNumber,
				AssetName:        asset.Name,
				AccountName:      accountName,
				AcquisitionDate:  asset.AcquisitionDate.Format("2006-01-02"),
				AcquisitionCost:  asset.AcquisitionCost,
				UsefulLifeYears:  asset.UsefulLifeYears,
				Method:           asset.DepreciationMethod,
				AnnualAmount:     annual,
				MonthsInPeriod:   monthsInPeriod(asset, period),
				PeriodAmount:     history.Amount,
				CumulativeAmount: cumulative,
				BookValue:        asset.AcquisitionCost.Sub(cumulative),
				AlreadyRecorded:  true,
			}
			plan.Rows = append(plan.Rows, row)
			plan.TotalDepreciation = plan.TotalDepreciation.Add(row.PeriodAmount)

		case errors.Is(err, apperrors.ErrNotFound):
			priorCumulative, sumErr := s.depreciationRepo.SumThrough(ctx, asset.AssetID, period.EndDate)
			if sumErr != nil {
				return nil, fmt.Errorf("failed to sum depreciation history for asset %s: %w", asset.AssetID, sumErr)
			}
			row := s.planRowFor(asset, period, accountName, annual, priorCumulative)
			plan.Rows = append(plan.Rows, row)
			plan.TotalDepreciation = plan.TotalDepreciation.Add(row.PeriodAmount)
			if row.PeriodAmount.IsPositive() {
				plan.HasUnrecorded = true
			}

		default:
			s.LogError(ctx, err, "Failed to look up depreciation history",
				slog.String("asset_id", asset.AssetID), slog.String("period_id", periodID))
			return nil, fmt.Errorf("failed to look up depreciation history: %w", err)
		}
	}

	return plan, nil
}

// ApplyDepreciation posts one adjustment entry covering every unrecorded plan
// row and then records each asset in the depreciation history. The entry is
// dated at the period end.
//
// The entry post and the history writes are separate commits: a history
// failure after a successful post leaves the money correctly in the ledger,
// so it is surfaced as a reconciliation warning rather than rolled back.
func (s *adjustmentService) ApplyDepreciation(ctx context.Context, companyID string, periodID string, req dto.ApplyDepreciationRequest, userID string) (*domain.JournalEntry, []domain.ReconciliationWarning, error) {
	if err := dto.Validate(req); err != nil {
		return nil, nil, err
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve fiscal period %s: %w", periodID, err)
	}
	if period.Closed {
		return nil, nil, fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, periodID)
	}

	plan, err := s.PlanDepreciation(ctx, companyID, periodID)
	if err != nil {
		return nil, nil, err
	}

	toApply := make([]domain.DepreciationPlanRow, 0, len(plan.Rows))
	total := decimal.Zero
	for _, row := range plan.Rows {
		if !row.AlreadyRecorded && row.PeriodAmount.IsPositive() {
			toApply = append(toApply, row)
			total = total.Add(row.PeriodAmount)
		}
	}
	if len(toApply) == 0 {
		return nil, nil, fmt.Errorf("%w: no unrecorded depreciation for period %s", apperrors.ErrNothingToApply, periodID)
	}

	memo := req.Memo
	if memo == "" {
		memo = fmt.Sprintf("Depreciation for %s", period.Name)
	}

	// One debit to the expense account for the total, one credit to the
	// accumulated depreciation account per asset so the entry stays traceable
	// asset by asset.
	lines := make([]dto.CreateLineRequest, 0, len(toApply)+1)
	lines = append(lines, dto.CreateLineRequest{
		AccountID: req.ExpenseAccountID,
		Side:      domain.Debit,
		Amount:    total,
	})
	for _, row := range toApply {
		lines = append(lines, dto.CreateLineRequest{
			AccountID: req.AccumulatedAccountID,
			Side:      domain.Credit,
			Amount:    row.PeriodAmount,
			Notes:     fmt.Sprintf("%s %s", row.AssetNumber, row.AssetName),
		})
	}

	entry, err := s.ledgerSvc.PostEntry(ctx, companyID, dto.CreateEntryRequest{
		PeriodID: periodID,
		Date:     period.EndDate,
		Kind:     domain.Adjustment,
		Memo:     memo,
		Lines:    lines,
	}, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to post depreciation entry: %w", err)
	}

	now := time.Now().UTC()
	var warnings []domain.ReconciliationWarning
	for _, row := range toApply {
		history := domain.DepreciationHistory{
			HistoryID: uuid.NewString(),
			AssetID:   row.AssetID,
			PeriodID:  periodID,
			Amount:    row.PeriodAmount,
			EntryID:   &entry.EntryID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.depreciationRepo.SaveHistory(ctx, history); err != nil {
			s.LogWarn(ctx, "Depreciation entry posted but history record failed",
				slog.String("asset_id", row.AssetID),
				slog.String("entry_id", entry.EntryID),
				slog.String("error", err.Error()))
			warnings = append(warnings, domain.ReconciliationWarning{
				AssetID:  row.AssetID,
				PeriodID: periodID,
				EntryID:  entry.EntryID,
				Reason:   fmt.Sprintf("entry posted but history record failed: %v", err),
			})
		}
	}

	s.LogInfo(ctx, "Depreciation applied",
		slog.String("entry_id", entry.EntryID),
		slog.String("period_id", periodID),
		slog.Int("asset_count", len(toApply)),
		slog.Int("warning_count", len(warnings)))
	return entry, warnings, nil
}

// PlanAllowance computes the receivable-driven allowance adjustment from the
// configured receivable account names and allowance rate. Receivable accounts
// that do not exist for the company are skipped.
func (s *adjustmentService) PlanAllowance(ctx context.Context, companyID string, periodID string) (*domain.AllowancePlan, error) {
	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal period %s: %w", periodID, err)
	}

	plan := &domain.AllowancePlan{
		PeriodID:         periodID,
		CompanyID:        companyID,
		Receivables:      make([]domain.ReceivableBalance, 0, len(s.cfg.ReceivableAccountNames)),
		TotalReceivables: decimal.Zero,
		AllowanceRate:    s.cfg.AllowanceRate,
	}

	for _, name := range s.cfg.ReceivableAccountNames {
		account, err := s.accountSvc.FindAccountByName(ctx, companyID, name)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve receivable account %q: %w", name, err)
		}

		balance, err := s.ledgerSvc.Balance(ctx, companyID, account.AccountID, period.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %q: %w", name, err)
		}
		// Credit balances on a receivable do not attract an allowance.
		if !balance.IsPositive() {
			continue
		}
		plan.Receivables = append(plan.Receivables, domain.ReceivableBalance{
			AccountID:   account.AccountID,
			AccountName: account.Name,
			Balance:     balance,
		})
		plan.TotalReceivables = plan.TotalReceivables.Add(balance)
	}

	plan.RequiredAllowance = accounting.RoundHalfUp(plan.TotalReceivables.Mul(plan.AllowanceRate))

	previous := decimal.Zero
	allowanceAccount, err := s.accountSvc.FindAccountByName(ctx, companyID, s.cfg.AllowanceAccountName)
	switch {
	case err == nil:
		previous, err = s.ledgerSvc.Balance(ctx, companyID, allowanceAccount.AccountID, period.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to compute previous allowance balance: %w", err)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// No allowance account yet, prior balance is zero.
	default:
		return nil, fmt.Errorf("failed to resolve allowance account: %w", err)
	}
	plan.PreviousAllowance = previous

	diff := plan.RequiredAllowance.Sub(previous)
	plan.IsReversal = diff.IsNegative()
	plan.EntryAmount = diff.Abs()

	return plan, nil
}

// ApplyAllowance posts the allowance adjustment entry for the period. A
// provision debits the expense and credits the allowance; a reversal debits
// the allowance and credits the income account.
func (s *adjustmentService) ApplyAllowance(ctx context.Context, companyID string, periodID string, req dto.ApplyAllowanceRequest, userID string) (*domain.JournalEntry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal period %s: %w", periodID, err)
	}
	if period.Closed {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, periodID)
	}

	plan, err := s.PlanAllowance(ctx, companyID, periodID)
	if err != nil {
		return nil, err
	}
	if plan.EntryAmount.IsZero() {
		return nil, fmt.Errorf("%w: allowance already at the required level for period %s", apperrors.ErrNothingToApply, periodID)
	}

	memo := req.Memo
	if memo == "" {
		if plan.IsReversal {
			memo = fmt.Sprintf("Allowance for doubtful accounts reversal for %s", period.Name)
		} else {
			memo = fmt.Sprintf("Allowance for doubtful accounts for %s", period.Name)
		}
	}

	var lines []dto.CreateLineRequest
	if plan.IsReversal {
		lines = []dto.CreateLineRequest{
			{AccountID: req.AllowanceAccountID, Side: domain.Debit, Amount: plan.EntryAmount},
			{AccountID: req.IncomeAccountID, Side: domain.Credit, Amount: plan.EntryAmount},
		}
	} else {
		lines = []dto.CreateLineRequest{
			{AccountID: req.ExpenseAccountID, Side: domain.Debit, Amount: plan.EntryAmount},
			{AccountID: req.AllowanceAccountID, Side: domain.Credit, Amount: plan.EntryAmount},
		}
	}

	entry, err := s.ledgerSvc.PostEntry(ctx, companyID, dto.CreateEntryRequest{
		PeriodID: periodID,
		Date:     period.EndDate,
		Kind:     domain.Adjustment,
		Memo:     memo,
		Lines:    lines,
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to post allowance entry: %w", err)
	}

	s.LogInfo(ctx, "Allowance applied",
		slog.String("entry_id", entry.EntryID),
		slog.String("period_id", periodID),
		slog.String("amount", plan.EntryAmount.String()),
		slog.Bool("reversal", plan.IsReversal))
	return entry, nil
}
