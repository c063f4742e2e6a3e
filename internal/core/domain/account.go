package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalSideIsDebit reports whether the account type carries its balance on
// the debit side (assets and expenses) rather than the credit side.
func (t AccountType) NormalSideIsDebit() bool {
	return t == Asset || t == Expense
}

// Account represents a chart-of-accounts entry.
//
// Once an account is referenced by a posted journal line it is structurally
// frozen: the type and the adjustment-only flag can no longer change. The name
// and description stay editable and the account may be deactivated.
type Account struct {
	AccountID      string      `json:"accountID"`      // Primary Key (e.g., UUID)
	CompanyID      string      `json:"companyID"`      // FK -> companies.company_id (Not Null)
	Name           string      `json:"name"`           // Unique per company
	AccountType    AccountType `json:"accountType"`    // ASSET, LIABILITY, etc.
	AdjustmentOnly bool        `json:"adjustmentOnly"` // Usable only on adjustment/closing entries
	Description    string      `json:"description"`    // Nullable user description
	IsActive       bool        `json:"isActive"`       // Deactivation instead of deletion
	AuditFields
}
