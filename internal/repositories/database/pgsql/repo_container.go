package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	depreciationRepo := newPgxDepreciationRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:      companyRepo,
		AccountRepo:      accountRepo,
		PeriodRepo:       periodRepo,
		JournalRepo:      journalRepo,
		AssetRepo:        assetRepo,
		DepreciationRepo: depreciationRepo,
		ReportingRepo:    reportingRepo,
	}
}
