package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
)

type cashFlowCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCashFlowCategoryRepository creates a new repository for the account
// code to cash-flow activity map.
func NewCashFlowCategoryRepository(pool *pgxpool.Pool) portsrepo.CashFlowCategoryRepository {
	return &cashFlowCategoryRepository{pool: pool}
}

var _ portsrepo.CashFlowCategoryRepository = (*cashFlowCategoryRepository)(nil)

// ListCategoryEntries returns all cash-flow category mappings.
func (r *cashFlowCategoryRepository) ListCategoryEntries(ctx context.Context) ([]domain.CashFlowCategoryEntry, error) {
	query := `
		SELECT account_code, activity_category, subcategory, created_at, created_by, last_updated_at, last_updated_by
		FROM cash_flow_categories
		ORDER BY account_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash flow categories: %w", err)
	}
	defer rows.Close()

	entries := []domain.CashFlowCategoryEntry{}
	for rows.Next() {
		var entry domain.CashFlowCategoryEntry
		if err := rows.Scan(
			&entry.AccountCode,
			&entry.ActivityCategory,
			&entry.Subcategory,
			&entry.CreatedAt,
			&entry.CreatedBy,
			&entry.LastUpdatedAt,
			&entry.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash flow category row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash flow category rows: %w", err)
	}

	return entries, nil
}
