package services

import (
	portsrepo "github.com/kessan-app/kessan_backend/internal/core/ports/repositories"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repository and service
// dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	companySvc := NewCompanyService(repos.CompanyRepo)
	accountSvc := NewAccountService(repos.AccountRepo)
	periodSvc := NewPeriodService(repos.PeriodRepo)
	ledgerSvc := NewLedgerService(repos.JournalRepo, accountSvc, periodSvc)
	assetSvc := NewAssetService(repos.AssetRepo, repos.DepreciationRepo, accountSvc)
	adjustmentSvc := NewAdjustmentService(repos.AssetRepo, repos.DepreciationRepo, assetSvc, accountSvc, periodSvc, ledgerSvc, cfg)
	reportingSvc := NewReportingService(repos.ReportingRepo)

	return &portssvc.ServiceContainer{
		Company:    companySvc,
		Account:    accountSvc,
		Period:     periodSvc,
		Ledger:     ledgerSvc,
		Asset:      assetSvc,
		Adjustment: adjustmentSvc,
		Reporting:  reportingSvc,
	}
}
