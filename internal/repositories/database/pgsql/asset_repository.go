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

type PgxAssetRepository struct {
	pool *pgxpool.Pool
}

// newPgxAssetRepository creates a new repository for fixed asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{pool: pool}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func toDomainAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:            m.AssetID,
		CompanyID:          m.CompanyID,
		AssetNumber:        m.AssetNumber,
		Name:               m.Name,
		AccountID:          m.AccountID,
		AcquisitionDate:    m.AcquisitionDate,
		AcquisitionCost:    m.AcquisitionCost,
		AcquisitionEntryID: m.AcquisitionEntryID,
		DepreciationMethod: domain.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeYears:    m.UsefulLifeYears,
		ResidualValue:      m.ResidualValue,
		Status:             domain.AssetStatus(m.Status),
		DisposalDate:       m.DisposalDate,
		DisposalEntryID:    m.DisposalEntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const assetColumns = `asset_id, company_id, asset_number, name, account_id, acquisition_date, acquisition_cost, acquisition_entry_id, depreciation_method, useful_life_years, residual_value, status, disposal_date, disposal_entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.AssetID,
		&m.CompanyID,
		&m.AssetNumber,
		&m.Name,
		&m.AccountID,
		&m.AcquisitionDate,
		&m.AcquisitionCost,
		&m.AcquisitionEntryID,
		&m.DepreciationMethod,
		&m.UsefulLifeYears,
		&m.ResidualValue,
		&m.Status,
		&m.DisposalDate,
		&m.DisposalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAsset inserts a new fixed asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.CompanyID,
		asset.AssetNumber,
		asset.Name,
		asset.AccountID,
		asset.AcquisitionDate,
		asset.AcquisitionCost,
		asset.AcquisitionEntryID,
		asset.DepreciationMethod,
		asset.UsefulLifeYears,
		asset.ResidualValue,
		asset.Status,
		asset.DisposalDate,
		asset.DisposalEntryID,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset number %q", apperrors.ErrDuplicate, asset.AssetNumber)
		}
		return apperrors.NewAppError(500, "failed to save asset "+asset.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves a fixed asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`
	m, err := scanAsset(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find asset by ID "+assetID, err)
	}
	asset := toDomainAsset(m)
	return &asset, nil
}

// ListAssets retrieves a company's assets, optionally filtered by status.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, companyID string, status *domain.AssetStatus) ([]domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE company_id = $1`
	args := []interface{}{companyID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY asset_number;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assets for company "+companyID, err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan asset row", err)
		}
		assets = append(assets, toDomainAsset(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating asset rows", err)
	}
	return assets, nil
}

// ListDepreciableAssets retrieves the assets eligible for depreciation in a
// period: acquired on or before the period end and not disposed before the
// period end.
func (r *PgxAssetRepository) ListDepreciableAssets(ctx context.Context, companyID string, periodEnd time.Time) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM fixed_assets
		WHERE company_id = $1
		  AND acquisition_date <= $2
		  AND (disposal_date IS NULL OR disposal_date >= $2)
		ORDER BY asset_number;
	`
	rows, err := r.pool.Query(ctx, query, companyID, periodEnd)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query depreciable assets for company "+companyID, err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan asset row", err)
		}
		assets = append(assets, toDomainAsset(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating asset rows", err)
	}
	return assets, nil
}

// UpdateAssetDisposal records the terminal disposal state of an asset.
func (r *PgxAssetRepository) UpdateAssetDisposal(ctx context.Context, assetID string, status domain.AssetStatus, disposalDate time.Time, disposalEntryID *string, userID string, now time.Time) error {
	query := `
		UPDATE fixed_assets
		SET status = $2,
		    disposal_date = $3,
		    disposal_entry_id = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE asset_id = $1 AND status = 'ACTIVE';
	`
	cmdTag, err := r.pool.Exec(ctx, query, assetID, status, disposalDate, disposalEntryID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record disposal for asset "+assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the asset does not exist or it already left ACTIVE.
		var current string
		err := r.pool.QueryRow(ctx, `SELECT status FROM fixed_assets WHERE asset_id = $1;`, assetID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to inspect asset "+assetID, err)
		}
		return fmt.Errorf("%w: asset %s is %s", apperrors.ErrAssetNotActive, assetID, current)
	}
	return nil
}
