package services

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// PeriodSvcFacade defines operations on the fiscal period registry.
type PeriodSvcFacade interface {
	// CreatePeriod validates the date range and the company's period
	// contiguity before persisting.
	CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FiscalPeriod, error)
	GetPeriodByID(ctx context.Context, companyID string, periodID string) (*domain.FiscalPeriod, error)
	FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.FiscalPeriod, error)
	ListPeriods(ctx context.Context, companyID string) ([]domain.FiscalPeriod, error)
	// ClosePeriod irreversibly closes the period against further postings.
	ClosePeriod(ctx context.Context, companyID string, periodID string, userID string) error
}
