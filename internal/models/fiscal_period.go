package models

import "time"

// FiscalPeriod represents a row in the fiscal_periods table.
type FiscalPeriod struct {
	PeriodID  string     `db:"period_id"`
	CompanyID string     `db:"company_id"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   time.Time  `db:"end_date"`
	Closed    bool       `db:"closed"`
	ClosedAt  *time.Time `db:"closed_at"`
	AuditFields
}
