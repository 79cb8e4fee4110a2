package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
)

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account directory data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &accountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*accountRepository)(nil)

// FindAccountByCode retrieves an account by its unique code.
func (r *accountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	query := `
		SELECT account_code, name, account_type, category, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE account_code = $1;
	`
	var acc domain.Account
	err := r.pool.QueryRow(ctx, query, accountCode).Scan(
		&acc.AccountCode,
		&acc.Name,
		&acc.AccountType,
		&acc.Category,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Map db not found error to application specific error
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", accountCode, err)
	}
	return &acc, nil
}

// ListAccounts returns the full account directory ordered by code.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_code, name, account_type, category, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		ORDER BY account_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.AccountCode,
			&acc.Name,
			&acc.AccountType,
			&acc.Category,
			&acc.CreatedAt,
			&acc.CreatedBy,
			&acc.LastUpdatedAt,
			&acc.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}
