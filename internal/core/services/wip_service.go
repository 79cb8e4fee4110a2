package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
)

// wipService computes earned-value work-in-progress positions.
// WIP is a derived read: nothing here mutates projects, and the same
// snapshot always yields the same values.
type wipService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewWIPService creates a new WIP service.
func NewWIPService(projectRepo portsrepo.ProjectRepository) portssvc.WIPService {
	return &wipService{projectRepo: projectRepo}
}

var _ portssvc.WIPService = (*wipService)(nil)

// EarnedValue is the contract value earned to date:
// totalValue x (progress / 100), with progress clamped to [0, 100].
func EarnedValue(project domain.Project) decimal.Decimal {
	return project.TotalValue.Mul(project.ClampedProgress()).Div(decimal.NewFromInt(100))
}

// EarnedValueWIP is the unbilled portion of earned value. A negative result
// means the project is over-billed; that is a valid signal, not an error.
func EarnedValueWIP(project domain.Project, totalBilled decimal.Decimal) decimal.Decimal {
	return EarnedValue(project).Sub(totalBilled)
}

func buildProjectWIP(project domain.Project) domain.ProjectWIP {
	totalBilled := project.TotalBilled()
	earned := EarnedValue(project)
	return domain.ProjectWIP{
		ProjectID:      project.ProjectID,
		ProjectCode:    project.ProjectCode,
		TotalValue:     project.TotalValue,
		Progress:       project.ClampedProgress(),
		EarnedValue:    earned,
		TotalBilled:    totalBilled,
		EarnedValueWIP: earned.Sub(totalBilled),
	}
}

// ProjectWIP computes the earned-value WIP position of one project.
func (s *wipService) ProjectWIP(ctx context.Context, projectID string) (*domain.ProjectWIP, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	wip := buildProjectWIP(*project)
	return &wip, nil
}

// RecalculateAll computes WIP for every project snapshot.
func (s *wipService) RecalculateAll(ctx context.Context) ([]domain.ProjectWIP, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	wips := make([]domain.ProjectWIP, len(projects))
	for i, project := range projects {
		wips[i] = buildProjectWIP(project)
	}

	s.LogInfo(ctx, "WIP recalculated", "project_count", len(wips))
	return wips, nil
}
