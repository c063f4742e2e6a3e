package domain

import "time"

// FiscalPeriod is a date range a company posts into. Periods of a company are
// contiguous and non-overlapping, and StartDate < EndDate. A closed period
// accepts no further postings; closing is one-way.
type FiscalPeriod struct {
	PeriodID  string     `json:"periodID"`  // Primary Key (e.g., UUID)
	CompanyID string     `json:"companyID"` // FK -> companies.company_id (Not Null)
	Name      string     `json:"name"`      // e.g. "FY2025"
	StartDate time.Time  `json:"startDate"` // Inclusive
	EndDate   time.Time  `json:"endDate"`   // Inclusive
	Closed    bool       `json:"closed"`
	ClosedAt  *time.Time `json:"closedAt"` // Set exactly once, when Closed flips
	AuditFields
}

// Contains reports whether d falls within the period's date range (inclusive).
func (p FiscalPeriod) Contains(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// MonthCount returns the number of whole months the period spans.
// Fiscal periods start and end on month boundaries in practice, so the
// count is taken from the calendar months of the range endpoints.
func (p FiscalPeriod) MonthCount() int {
	return (p.EndDate.Year()-p.StartDate.Year())*12 + int(p.EndDate.Month()) - int(p.StartDate.Month()) + 1
}
