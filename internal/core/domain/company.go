package domain

// Company is the owning scope for accounts, fiscal periods, journal entries
// and fixed assets. Nothing crosses a company boundary.
type Company struct {
	CompanyID    string `json:"companyID"`    // Primary Key (e.g., UUID)
	Name         string `json:"name"`         // Legal or display name
	CurrencyCode string `json:"currencyCode"` // Ledger currency for all amounts
	Description  string `json:"description"`  // Nullable user description
	AuditFields
}
