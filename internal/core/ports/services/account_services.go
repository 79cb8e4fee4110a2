package services

import (
	"context"

	"github.com/soildynamics/geoledger/internal/core/domain"
	"github.com/soildynamics/geoledger/internal/dto"
)

// AccountService exposes the account directory.
type AccountService interface {
	// GetAccountByCode retrieves one account from the directory.
	GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// ListAccounts returns the full directory.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// TransactionService exposes paginated reads over the ledger.
type TransactionService interface {
	// ListTransactionsByAccount returns a page of transactions for one
	// account code.
	ListTransactionsByAccount(ctx context.Context, accountCode string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
