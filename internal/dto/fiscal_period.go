package dto

import (
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to create a fiscal period.
type CreatePeriodRequest struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// PeriodResponse defines the data returned for a fiscal period.
type PeriodResponse struct {
	PeriodID  string     `json:"periodID"`
	CompanyID string     `json:"companyID"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Closed    bool       `json:"closed"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}

// ToPeriodResponse converts a domain.FiscalPeriod to PeriodResponse DTO.
func ToPeriodResponse(p *domain.FiscalPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Closed:    p.Closed,
		ClosedAt:  p.ClosedAt,
	}
}
