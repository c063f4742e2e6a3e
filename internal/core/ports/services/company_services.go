package services

import (
	"context"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// CompanySvcFacade defines operations on the company registry.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}
