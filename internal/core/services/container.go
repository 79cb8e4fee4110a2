package services

import (
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
)

// NewServiceContainer wires all services over the given repositories.
func NewServiceContainer(
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CashFlowCategoryRepository,
	assetRepo portsrepo.FixedAssetRepository,
	postingRepo portsrepo.PostingRepository,
	projectRepo portsrepo.ProjectRepository,
	transactionRepo portsrepo.TransactionRepository,
) *portssvc.ServiceContainer {
	depreciation := NewDepreciationService()

	return &portssvc.ServiceContainer{
		Account:       NewAccountService(accountRepo),
		Transaction:   NewTransactionService(transactionRepo),
		Posting:       NewPostingService(assetRepo, postingRepo, depreciation),
		Depreciation:  depreciation,
		WIP:           NewWIPService(projectRepo),
		CashFlow:      NewCashFlowService(transactionRepo, categoryRepo),
		Profitability: NewProfitabilityService(projectRepo),
	}
}
