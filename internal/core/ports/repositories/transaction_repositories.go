package repositories

import (
	"context"
	"time"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// TransactionRepository provides read access to the transaction ledger.
type TransactionRepository interface {
	// ListTransactions returns transactions whose date falls within
	// [from, to]. A nil bound is open-ended.
	ListTransactions(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error)

	// ListTransactionsByAccountCode returns a page of transactions for one
	// account, newest first, with an opaque continuation token.
	ListTransactionsByAccountCode(ctx context.Context, accountCode string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
