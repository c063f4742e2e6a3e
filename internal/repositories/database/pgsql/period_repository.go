package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	"github.com/kessan-app/kessan_backend/internal/models"
)

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxPeriodRepository creates a new repository for fiscal period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{pool: pool}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func toDomainPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		PeriodID:  m.PeriodID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Closed:    m.Closed,
		ClosedAt:  m.ClosedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const periodColumns = `period_id, company_id, name, start_date, end_date, closed, closed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.CompanyID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Closed,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePeriod inserts a new fiscal period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	query := `
		INSERT INTO fiscal_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		period.PeriodID,
		period.CompanyID,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.Closed,
		period.ClosedAt,
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, period.PeriodID)
		}
		return apperrors.NewAppError(500, "failed to save fiscal period "+period.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a fiscal period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE period_id = $1;`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fiscal period by ID "+periodID, err)
	}
	period := toDomainPeriod(m)
	return &period, nil
}

// FindLatestPeriod retrieves the company's period with the greatest end date.
func (r *PgxPeriodRepository) FindLatestPeriod(ctx context.Context, companyID string) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE company_id = $1
		ORDER BY end_date DESC
		LIMIT 1;
	`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find latest period for company "+companyID, err)
	}
	period := toDomainPeriod(m)
	return &period, nil
}

// FindPeriodForDate retrieves the company's period containing the given date.
func (r *PgxPeriodRepository) FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE company_id = $1 AND start_date <= $2 AND end_date >= $2;
	`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period for date", err)
	}
	period := toDomainPeriod(m)
	return &period, nil
}

// ListPeriods retrieves all periods for a company ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, companyID string) ([]domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE company_id = $1
		ORDER BY start_date;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal periods for company "+companyID, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal period row", err)
		}
		periods = append(periods, toDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fiscal period rows", err)
	}
	return periods, nil
}

// ClosePeriod flips the closed flag exactly once. The conditional UPDATE takes
// an exclusive lock on the period row, so it serializes against postings that
// re-check the period under a shared lock: whichever commits first wins.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, periodID string, userID string, closedAt time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET closed = TRUE,
		    closed_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE period_id = $1 AND closed = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, periodID, closedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close fiscal period "+periodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the period does not exist or it is already closed.
		var closed bool
		err := r.pool.QueryRow(ctx, `SELECT closed FROM fiscal_periods WHERE period_id = $1;`, periodID).Scan(&closed)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to inspect fiscal period "+periodID, err)
		}
		return fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, periodID)
	}
	return nil
}
