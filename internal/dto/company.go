package dto

import (
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a new company.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required"`
	CurrencyCode string `json:"currencyCode" validate:"required,len=3"`
	Description  string `json:"description"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID    string    `json:"companyID"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		CurrencyCode: c.CurrencyCode,
		Description:  c.Description,
		CreatedAt:    c.CreatedAt,
	}
}
