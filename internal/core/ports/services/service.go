package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing engine functionality and is what
// the command layer (and any future hosting surface) consumes.
type ServiceContainer struct {
	Company    CompanySvcFacade
	Account    AccountSvcFacade
	Period     PeriodSvcFacade
	Ledger     LedgerSvcFacade
	Asset      AssetSvcFacade
	Adjustment AdjustmentSvcFacade
	Reporting  ReportingSvcFacade
}
