package repositories

import (
	"context"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// PeriodReader defines read operations for fiscal period data
type PeriodReader interface {
	// FindPeriodByID retrieves a specific fiscal period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error)

	// FindLatestPeriod retrieves the company's period with the greatest end date.
	// Returns apperrors.ErrNotFound when the company has no periods yet.
	FindLatestPeriod(ctx context.Context, companyID string) (*domain.FiscalPeriod, error)

	// FindPeriodForDate retrieves the company's period containing the given date.
	FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves all periods for a company ordered by start date.
	ListPeriods(ctx context.Context, companyID string) ([]domain.FiscalPeriod, error)
}

// PeriodWriter defines write operations for fiscal period data
type PeriodWriter interface {
	// SavePeriod persists a new fiscal period.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) error

	// ClosePeriod flips the closed flag exactly once. It must serialize against
	// in-flight postings for the period: implementations lock the period row so
	// a posting that began before the close either commits against the
	// pre-close state or observes the closed flag and fails.
	// Returns apperrors.ErrPeriodClosed when the period is already closed.
	ClosePeriod(ctx context.Context, periodID string, userID string, closedAt time.Time) error
}

// PeriodRepositoryFacade combines all fiscal-period repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
