package services

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only financial reports.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
	ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheetReport, error)
	// AccountLedger builds one account's ledger book over a date range, each
	// row carrying the running balance on the account's normal side.
	AccountLedger(ctx context.Context, companyID string, accountID string, from, to time.Time) (*domain.AccountLedgerReport, error)
}
