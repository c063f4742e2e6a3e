package models

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// Account represents a row in the accounts table.
type Account struct {
	AccountID      string      `db:"account_id"`
	CompanyID      string      `db:"company_id"`
	Name           string      `db:"name"`
	AccountType    AccountType `db:"account_type"`
	AdjustmentOnly bool        `db:"adjustment_only"`
	Description    string      `db:"description"`
	IsActive       bool        `db:"is_active"`
	AuditFields
}
