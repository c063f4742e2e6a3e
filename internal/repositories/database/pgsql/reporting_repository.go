package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData retrieves trial balance data as of a specific date.
// The balance is placed on the account's normal side; a negative net flips to
// the other column.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.name AS account_name,
			a.account_type,
			SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN l.side = 'CREDIT' THEN l.amount ELSE 0 END) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date <= $1
			AND a.company_id = $2
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.name
	`

	rows, err := r.Pool.Query(ctx, query, asOf, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)

		// Collapse the two columns into a single balance on the side it
		// actually falls on. A contra balance shows up on the opposite column.
		net := row.Debit.Sub(row.Credit)
		row.Debit = decimal.Zero
		row.Credit = decimal.Zero
		if net.IsNegative() {
			row.Credit = net.Neg()
		} else {
			row.Debit = net
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.TrialBalanceRow{}, nil
	}
	return result, nil
}

// GetAccountLedgerData retrieves one account's raw ledger activity: the
// debit-minus-credit net of everything posted before the range and the lines
// within it, oldest first.
func (r *reportingRepository) GetAccountLedgerData(ctx context.Context, companyID string, accountID string, from, to time.Time) (*domain.AccountLedgerData, error) {
	data := &domain.AccountLedgerData{AccountID: accountID}

	accountQuery := `SELECT name, account_type FROM accounts WHERE account_id = $1 AND company_id = $2`
	var accountType string
	if err := r.Pool.QueryRow(ctx, accountQuery, accountID, companyID).Scan(&data.AccountName, &accountType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error resolving account for ledger book: %w", err)
	}
	data.AccountType = domain.AccountType(accountType)

	openingQuery := `
		SELECT COALESCE(SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE -l.amount END), 0)
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1
			AND e.entry_date < $2
	`
	if err := r.Pool.QueryRow(ctx, openingQuery, accountID, from).Scan(&data.OpeningNet); err != nil {
		return nil, fmt.Errorf("error querying opening balance for ledger book: %w", err)
	}

	linesQuery := `
		SELECT
			e.entry_date,
			e.entry_id,
			e.memo,
			CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE 0 END AS debit,
			CASE WHEN l.side = 'CREDIT' THEN l.amount ELSE 0 END AS credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1
			AND e.entry_date BETWEEN $2 AND $3
		ORDER BY e.entry_date, e.created_at, l.line_id
	`
	rows, err := r.Pool.Query(ctx, linesQuery, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger book lines: %w", err)
	}
	defer rows.Close()

	data.Lines = []domain.AccountLedgerRow{}
	for rows.Next() {
		var line domain.AccountLedgerRow
		if err := rows.Scan(&line.Date, &line.EntryID, &line.Memo, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("error scanning ledger book line: %w", err)
		}
		data.Lines = append(data.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger book lines: %w", err)
	}
	return data, nil
}

// GetProfitAndLossData retrieves net revenue and expense amounts for a date range.
func (r *reportingRepository) GetProfitAndLossData(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.name,
			SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE -l.amount END) AS net
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date BETWEEN $1 AND $2
			AND a.company_id = $3
			AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY a.account_type, a.account_id, a.name
		ORDER BY a.name
	`

	rows, err := r.Pool.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying profit and loss data: %w", err)
	}
	defer rows.Close()

	revenue := []domain.AccountAmount{}
	expenses := []domain.AccountAmount{}
	for rows.Next() {
		var accountType string
		var amount domain.AccountAmount

		if err := rows.Scan(&accountType, &amount.AccountID, &amount.AccountName, &amount.NetAmount); err != nil {
			return nil, nil, fmt.Errorf("error scanning profit and loss row: %w", err)
		}

		// The raw net is debit-positive; revenue carries its balance on the
		// credit side.
		switch domain.AccountType(accountType) {
		case domain.Revenue:
			amount.NetAmount = amount.NetAmount.Neg()
			revenue = append(revenue, amount)
		case domain.Expense:
			expenses = append(expenses, amount)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating profit and loss rows: %w", err)
	}
	return revenue, expenses, nil
}

// GetBalanceSheetData retrieves net asset, liability and equity amounts as of a date.
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.name,
			SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE -l.amount END) AS net
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date <= $1
			AND a.company_id = $2
			AND a.account_type IN ('ASSET', 'LIABILITY', 'EQUITY')
		GROUP BY a.account_type, a.account_id, a.name
		ORDER BY a.name
	`

	rows, err := r.Pool.Query(ctx, query, asOf, companyID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error querying balance sheet data: %w", err)
	}
	defer rows.Close()

	assets := []domain.AccountAmount{}
	liabilities := []domain.AccountAmount{}
	equity := []domain.AccountAmount{}
	for rows.Next() {
		var accountType string
		var amount domain.AccountAmount

		if err := rows.Scan(&accountType, &amount.AccountID, &amount.AccountName, &amount.NetAmount); err != nil {
			return nil, nil, nil, fmt.Errorf("error scanning balance sheet row: %w", err)
		}

		switch domain.AccountType(accountType) {
		case domain.Asset:
			assets = append(assets, amount)
		case domain.Liability:
			amount.NetAmount = amount.NetAmount.Neg()
			liabilities = append(liabilities, amount)
		case domain.Equity:
			amount.NetAmount = amount.NetAmount.Neg()
			equity = append(equity, amount)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error iterating balance sheet rows: %w", err)
	}
	return assets, liabilities, equity, nil
}
