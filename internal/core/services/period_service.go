package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// periodService provides fiscal period registry operations.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod validates the date range and contiguity before persisting.
// A company's first period may start anywhere; every later period must start
// exactly one day after the latest existing period's end.
func (s *periodService) CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FiscalPeriod, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("%w: start date %s must be before end date %s",
			apperrors.ErrValidation, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}

	latest, err := s.periodRepo.FindLatestPeriod(ctx, companyID)
	switch {
	case err == nil:
		expectedStart := latest.EndDate.AddDate(0, 0, 1)
		if !req.StartDate.Equal(expectedStart) {
			if req.StartDate.Before(expectedStart) {
				return nil, fmt.Errorf("%w: new period starts %s, latest period ends %s",
					apperrors.ErrPeriodOverlap, req.StartDate.Format("2006-01-02"), latest.EndDate.Format("2006-01-02"))
			}
			return nil, fmt.Errorf("%w: new period must start %s, got %s",
				apperrors.ErrPeriodNotContiguous, expectedStart.Format("2006-01-02"), req.StartDate.Format("2006-01-02"))
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// First period for the company.
	default:
		s.LogError(ctx, err, "Failed to look up latest period", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to look up latest period: %w", err)
	}

	now := time.Now().UTC()
	period := domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Closed:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal period", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save fiscal period: %w", err)
	}

	s.LogInfo(ctx, "Fiscal period created",
		slog.String("period_id", period.PeriodID),
		slog.String("start", period.StartDate.Format("2006-01-02")),
		slog.String("end", period.EndDate.Format("2006-01-02")))
	return &period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, companyID string, periodID string) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return period, nil
}

func (s *periodService) FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.FiscalPeriod, error) {
	return s.periodRepo.FindPeriodForDate(ctx, companyID, date)
}

func (s *periodService) ListPeriods(ctx context.Context, companyID string) ([]domain.FiscalPeriod, error) {
	return s.periodRepo.ListPeriods(ctx, companyID)
}

// ClosePeriod irreversibly closes the period. The repository serializes the
// close against in-flight postings; a second close fails with ErrPeriodClosed.
func (s *periodService) ClosePeriod(ctx context.Context, companyID string, periodID string, userID string) error {
	if _, err := s.GetPeriodByID(ctx, companyID, periodID); err != nil {
		return err
	}

	if err := s.periodRepo.ClosePeriod(ctx, periodID, userID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrPeriodClosed) {
			s.LogWarn(ctx, "Period already closed", slog.String("period_id", periodID))
			return err
		}
		s.LogError(ctx, err, "Failed to close fiscal period", slog.String("period_id", periodID))
		return fmt.Errorf("failed to close fiscal period: %w", err)
	}

	s.LogInfo(ctx, "Fiscal period closed", slog.String("period_id", periodID))
	return nil
}
