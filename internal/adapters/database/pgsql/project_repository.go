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

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new repository for project data.
func NewProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &projectRepository{pool: pool}
}

var _ portsrepo.ProjectRepository = (*projectRepository)(nil)

const projectColumns = `project_id, project_code, name, total_value, progress, status, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.ProjectCode,
		&p.Name,
		&p.TotalValue,
		&p.Progress,
		&p.Status,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProjectByID retrieves a project with its costs, billings, and
// transactions populated.
func (r *projectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = $1;`, projectColumns)

	project, err := scanProject(r.pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	if err := r.loadAssociations(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects returns all projects with associations populated.
func (r *projectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY project_code;`, projectColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	for i := range projects {
		if err := r.loadAssociations(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}

	return projects, nil
}

// loadAssociations populates costs, billings, and project-linked transactions.
func (r *projectRepository) loadAssociations(ctx context.Context, project *domain.Project) error {
	costs, err := r.findCosts(ctx, project.ProjectID)
	if err != nil {
		return err
	}
	project.Costs = costs

	billings, err := r.findBillings(ctx, project.ProjectID)
	if err != nil {
		return err
	}
	project.Billings = billings

	transactions, err := r.findTransactions(ctx, project.ProjectID)
	if err != nil {
		return err
	}
	project.Transactions = transactions

	return nil
}

func (r *projectRepository) findCosts(ctx context.Context, projectID string) ([]domain.ProjectCost, error) {
	query := `
		SELECT cost_id, project_id, category, amount, date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM project_costs
		WHERE project_id = $1
		ORDER BY date, cost_id;
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs for project %s: %w", projectID, err)
	}
	defer rows.Close()

	costs := []domain.ProjectCost{}
	for rows.Next() {
		var cost domain.ProjectCost
		if err := rows.Scan(
			&cost.CostID,
			&cost.ProjectID,
			&cost.Category,
			&cost.Amount,
			&cost.Date,
			&cost.Status,
			&cost.CreatedAt,
			&cost.CreatedBy,
			&cost.LastUpdatedAt,
			&cost.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cost row for project %s: %w", projectID, err)
		}
		costs = append(costs, cost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost rows for project %s: %w", projectID, err)
	}

	return costs, nil
}

func (r *projectRepository) findBillings(ctx context.Context, projectID string) ([]domain.Billing, error) {
	query := `
		SELECT billing_id, project_id, billing_date, percentage, amount, status, created_at, created_by, last_updated_at, last_updated_by
		FROM billings
		WHERE project_id = $1
		ORDER BY billing_date, billing_id;
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query billings for project %s: %w", projectID, err)
	}
	defer rows.Close()

	billings := []domain.Billing{}
	for rows.Next() {
		var billing domain.Billing
		if err := rows.Scan(
			&billing.BillingID,
			&billing.ProjectID,
			&billing.BillingDate,
			&billing.Percentage,
			&billing.Amount,
			&billing.Status,
			&billing.CreatedAt,
			&billing.CreatedBy,
			&billing.LastUpdatedAt,
			&billing.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan billing row for project %s: %w", projectID, err)
		}
		billings = append(billings, billing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billing rows for project %s: %w", projectID, err)
	}

	return billings, nil
}

func (r *projectRepository) findTransactions(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE project_id = $1
		ORDER BY date, created_at;
	`, transactionColumns)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for project %s: %w", projectID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for project %s: %w", projectID, err)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for project %s: %w", projectID, err)
	}

	return transactions, nil
}
