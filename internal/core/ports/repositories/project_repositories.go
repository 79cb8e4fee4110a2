package repositories

import (
	"context"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// ProjectRepository provides read access to projects and their associated
// costs, billings, and transactions.
type ProjectRepository interface {
	// FindProjectByID retrieves a project with its costs, billings, and
	// transactions populated. Returns apperrors.ErrNotFound if absent.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects returns all projects with associations populated.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}
