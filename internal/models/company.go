package models

// Company represents a row in the companies table.
type Company struct {
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	CurrencyCode string `db:"currency_code"`
	Description  string `db:"description"`
	AuditFields
}
