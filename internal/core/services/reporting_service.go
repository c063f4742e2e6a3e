package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
)

// reportingService assembles read-only financial reports from repository
// aggregations.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to build trial balance: %w", err)
	}
	return rows, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.PAndLReport, error) {
	revenue, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build profit and loss report", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to build profit and loss report: %w", err)
	}

	report := &domain.PAndLReport{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range revenue {
		report.TotalRevenue = report.TotalRevenue.Add(r.NetAmount)
	}
	for _, e := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(e.NetAmount)
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// AccountLedger builds one account's ledger book over a date range. The
// repository hands back a debit-positive opening net and the raw lines; the
// running balance is carried on the account's normal side.
func (s *reportingService) AccountLedger(ctx context.Context, companyID string, accountID string, from, to time.Time) (*domain.AccountLedgerReport, error) {
	data, err := s.reportingRepo.GetAccountLedgerData(ctx, companyID, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build account ledger",
			slog.String("company_id", companyID), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to build account ledger: %w", err)
	}

	opening := data.OpeningNet
	if !data.AccountType.NormalSideIsDebit() {
		opening = opening.Neg()
	}

	report := &domain.AccountLedgerReport{
		AccountID:      data.AccountID,
		AccountName:    data.AccountName,
		AccountType:    data.AccountType,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Rows:           make([]domain.AccountLedgerRow, 0, len(data.Lines)),
	}

	balance := opening
	for _, line := range data.Lines {
		movement := line.Debit.Sub(line.Credit)
		if !data.AccountType.NormalSideIsDebit() {
			movement = movement.Neg()
		}
		balance = balance.Add(movement)
		line.Balance = balance
		report.Rows = append(report.Rows, line)
	}
	report.ClosingBalance = balance
	return report, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance sheet", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to build balance sheet: %w", err)
	}

	report := &domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, a := range assets {
		report.TotalAssets = report.TotalAssets.Add(a.NetAmount)
	}
	for _, l := range liabilities {
		report.TotalLiabilities = report.TotalLiabilities.Add(l.NetAmount)
	}
	for _, e := range equity {
		report.TotalEquity = report.TotalEquity.Add(e.NetAmount)
	}
	return report, nil
}
