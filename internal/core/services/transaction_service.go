package services

import (
	"context"
	"fmt"

	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
)

// transactionService exposes paginated reads over the ledger.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository) portssvc.TransactionService {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionService = (*transactionService)(nil)

// ListTransactionsByAccount returns a page of transactions for one account code.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountCode string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactionsByAccountCode(ctx, accountCode, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}

	s.LogInfo(ctx, "Transactions listed for account", "account_code", accountCode, "count", len(transactions))
	return resp, nil
}
