package repositories

import (
	"context"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// AccountRepository provides read access to the account directory.
type AccountRepository interface {
	// FindAccountByCode retrieves an account by its unique code.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// ListAccounts returns the full account directory.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// CashFlowCategoryRepository provides read access to the account-code ->
// activity-category map used by cash-flow classification.
type CashFlowCategoryRepository interface {
	// ListCategoryEntries returns all cash-flow category mappings.
	ListCategoryEntries(ctx context.Context) ([]domain.CashFlowCategoryEntry, error)
}
