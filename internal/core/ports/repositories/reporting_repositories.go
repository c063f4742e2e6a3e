package repositories

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// ReportingRepository defines read-only aggregations for financial reports.
type ReportingRepository interface {
	// GetTrialBalanceData returns one row per account with activity, balances
	// placed on the account's normal side, as of the given date.
	GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetProfitAndLossData returns net amounts for revenue and expense accounts
	// over the date range.
	GetProfitAndLossData(ctx context.Context, companyID string, from, to time.Time) (revenue []domain.AccountAmount, expenses []domain.AccountAmount, err error)

	// GetBalanceSheetData returns net amounts for asset, liability and equity
	// accounts as of the given date.
	GetBalanceSheetData(ctx context.Context, companyID string, asOf time.Time) (assets []domain.AccountAmount, liabilities []domain.AccountAmount, equity []domain.AccountAmount, err error)

	// GetAccountLedgerData returns one account's raw ledger activity: the
	// debit-minus-credit net before the range and the posted lines within it,
	// ordered by entry date. ErrNotFound when the account does not exist in
	// the company.
	GetAccountLedgerData(ctx context.Context, companyID string, accountID string, from, to time.Time) (*domain.AccountLedgerData, error)
}
