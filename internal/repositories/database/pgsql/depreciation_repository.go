package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	"github.com/kessan-app/kessan_backend/internal/models"
)

type PgxDepreciationRepository struct {
	pool *pgxpool.Pool
}

// newPgxDepreciationRepository creates a new repository for depreciation history data.
func newPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{pool: pool}
}

var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

func toDomainHistory(m models.DepreciationHistory) domain.DepreciationHistory {
	return domain.DepreciationHistory{
		HistoryID: m.HistoryID,
		AssetID:   m.AssetID,
		PeriodID:  m.PeriodID,
		Amount:    m.Amount,
		EntryID:   m.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const historyColumns = `history_id, asset_id, period_id, amount, entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanHistory(row pgx.Row) (models.DepreciationHistory, error) {
	var m models.DepreciationHistory
	err := row.Scan(
		&m.HistoryID,
		&m.AssetID,
		&m.PeriodID,
		&m.Amount,
		&m.EntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveHistory persists a history row. The unique (asset_id, period_id) index
// is the concurrency guard against duplicate adjustment postings.
func (r *PgxDepreciationRepository) SaveHistory(ctx context.Context, history domain.DepreciationHistory) error {
	query := `
		INSERT INTO depreciation_history (` + historyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		history.HistoryID,
		history.AssetID,
		history.PeriodID,
		history.Amount,
		history.EntryID,
		history.CreatedAt,
		history.CreatedBy,
		history.LastUpdatedAt,
		history.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset %s, period %s", apperrors.ErrDuplicatePeriodRecord, history.AssetID, history.PeriodID)
		}
		return apperrors.NewAppError(500, "failed to save depreciation history for asset "+history.AssetID, err)
	}
	return nil
}

// FindByAssetAndPeriod retrieves the history row for (asset, period).
func (r *PgxDepreciationRepository) FindByAssetAndPeriod(ctx context.Context, assetID string, periodID string) (*domain.DepreciationHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM depreciation_history WHERE asset_id = $1 AND period_id = $2;`
	m, err := scanHistory(r.pool.QueryRow(ctx, query, assetID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find depreciation history for asset "+assetID, err)
	}
	history := toDomainHistory(m)
	return &history, nil
}

// ListByAsset retrieves all history rows for an asset ordered by period start.
func (r *PgxDepreciationRepository) ListByAsset(ctx context.Context, assetID string) ([]domain.DepreciationHistory, error) {
	query := `
		SELECT h.history_id, h.asset_id, h.period_id, h.amount, h.entry_id, h.created_at, h.created_by, h.last_updated_at, h.last_updated_by
		FROM depreciation_history h
		JOIN fiscal_periods p ON h.period_id = p.period_id
		WHERE h.asset_id = $1
		ORDER BY p.start_date;
	`
	rows, err := r.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query depreciation history for asset "+assetID, err)
	}
	defer rows.Close()

	histories := []domain.DepreciationHistory{}
	for rows.Next() {
		m, err := scanHistory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan depreciation history row", err)
		}
		histories = append(histories, toDomainHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating depreciation history rows", err)
	}
	return histories, nil
}

// SumThrough sums history amounts for an asset over periods whose end date is
// on or before asOf.
func (r *PgxDepreciationRepository) SumThrough(ctx context.Context, assetID string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(h.amount), 0)
		FROM depreciation_history h
		JOIN fiscal_periods p ON h.period_id = p.period_id
		WHERE h.asset_id = $1 AND p.end_date <= $2;
	`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, assetID, asOf).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum depreciation history for asset "+assetID, err)
	}
	return total, nil
}
