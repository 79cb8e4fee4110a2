package services

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Account       AccountService
	Transaction   TransactionService
	Posting       PostingService
	Depreciation  DepreciationCalculator
	WIP           WIPService
	CashFlow      CashFlowService
	Profitability ProfitabilityService
}
