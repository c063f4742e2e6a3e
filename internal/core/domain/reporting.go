package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents one account in the trial balance report. Exactly
// one of Debit/Credit is non-zero, per the account's normal side.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountAmount pairs an account with a net amount for P&L / balance sheet rows.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// PAndLReport is the profit and loss statement for a date range.
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// AccountLedgerRow is one posted line in an account's ledger book, with the
// running balance after the line.
type AccountLedgerRow struct {
	Date    time.Time       `json:"date"`
	EntryID string          `json:"entryID"`
	Memo    string          `json:"memo"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountLedgerData is the raw activity the reporting repository returns for
// one account: the debit-minus-credit net carried in from before the range and
// the lines within it, Balance still unset.
type AccountLedgerData struct {
	AccountID   string
	AccountName string
	AccountType AccountType
	OpeningNet  decimal.Decimal
	Lines       []AccountLedgerRow
}

// AccountLedgerReport is the ledger book for one account over a date range.
// Balances are carried on the account's normal side.
type AccountLedgerReport struct {
	AccountID      string             `json:"accountID"`
	AccountName    string             `json:"accountName"`
	AccountType    AccountType        `json:"accountType"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Rows           []AccountLedgerRow `json:"rows"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// BalanceSheetReport is the balance sheet as of a date.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}
