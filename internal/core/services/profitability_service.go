package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
)

// profitabilityService rolls up per-project and portfolio profitability.
type profitabilityService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProfitabilityService creates a new profitability service.
func NewProfitabilityService(projectRepo portsrepo.ProjectRepository) portssvc.ProfitabilityService {
	return &profitabilityService{projectRepo: projectRepo}
}

var _ portssvc.ProfitabilityService = (*profitabilityService)(nil)

// CalculateProjectProfitability computes the roll-up for one project
// snapshot. Direct costs sum every project cost regardless of approval
// status: a rejected cost still counts, matching established reporting
// behavior. CostBasisWIP (totalCosts - totalBilled) is a different measure
// than earned-value WIP and is reported under its own name.
func CalculateProjectProfitability(project domain.Project) domain.ProjectProfitability {
	directCosts := decimal.Zero
	for _, cost := range project.Costs {
		directCosts = directCosts.Add(cost.Amount)
	}

	indirectCosts := decimal.Zero
	indirectRevenue := decimal.Zero
	for _, txn := range project.Transactions {
		switch txn.FlowTag {
		case domain.FlowExpense, domain.FlowWIPIncrease:
			indirectCosts = indirectCosts.Add(txn.Amount)
		case domain.FlowRevenue, domain.FlowWIPDecrease:
			indirectRevenue = indirectRevenue.Add(txn.Amount)
		}
	}

	directBillings := project.TotalBilled()

	totalCosts := directCosts.Add(indirectCosts)
	totalBilled := directBillings.Add(indirectRevenue)
	grossProfit := totalBilled.Sub(totalCosts)

	oneHundred := decimal.NewFromInt(100)

	profitMargin := decimal.Zero
	costRatio := decimal.Zero
	if !project.TotalValue.IsZero() {
		profitMargin = grossProfit.Div(project.TotalValue).Mul(oneHundred)
		costRatio = totalCosts.Div(project.TotalValue).Mul(oneHundred)
	}

	roi := decimal.Zero
	if !totalCosts.IsZero() {
		roi = grossProfit.Div(totalCosts).Mul(oneHundred)
	}

	completion := project.ClampedProgress()
	if completion.IsZero() && !project.TotalValue.IsZero() {
		completion = totalBilled.Div(project.TotalValue).Mul(oneHundred)
	}

	return domain.ProjectProfitability{
		ProjectID:       project.ProjectID,
		ProjectCode:     project.ProjectCode,
		TotalValue:      project.TotalValue,
		DirectCosts:     directCosts,
		IndirectCosts:   indirectCosts,
		TotalCosts:      totalCosts,
		DirectBillings:  directBillings,
		IndirectRevenue: indirectRevenue,
		TotalBilled:     totalBilled,
		GrossProfit:     grossProfit,
		ProfitMargin:    profitMargin,
		CostRatio:       costRatio,
		ROI:             roi,
		Completion:      completion,
		CostBasisWIP:    totalCosts.Sub(totalBilled),
		IsProfitable:    grossProfit.GreaterThan(decimal.Zero),
	}
}

// ProjectProfitability computes the roll-up for one project.
func (s *profitabilityService) ProjectProfitability(ctx context.Context, projectID string) (*domain.ProjectProfitability, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	result := CalculateProjectProfitability(*project)

	s.LogInfo(ctx, "Project profitability calculated",
		"project_id", projectID,
		"gross_profit", result.GrossProfit.String())
	return &result, nil
}

// Portfolio summarizes profitability across all projects.
func (s *profitabilityService) Portfolio(ctx context.Context) (*domain.PortfolioSummary, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	summary := &domain.PortfolioSummary{
		TotalProjects:        len(projects),
		ProfitablePercentage: decimal.Zero,
		TotalValue:           decimal.Zero,
		TotalCosts:           decimal.Zero,
		TotalBilled:          decimal.Zero,
		GrossProfit:          decimal.Zero,
		Projects:             make([]domain.ProjectProfitability, 0, len(projects)),
	}

	for _, project := range projects {
		p := CalculateProjectProfitability(project)
		summary.Projects = append(summary.Projects, p)
		summary.TotalValue = summary.TotalValue.Add(p.TotalValue)
		summary.TotalCosts = summary.TotalCosts.Add(p.TotalCosts)
		summary.TotalBilled = summary.TotalBilled.Add(p.TotalBilled)
		summary.GrossProfit = summary.GrossProfit.Add(p.GrossProfit)
		if p.IsProfitable {
			summary.ProfitableProjects++
		}
	}

	if summary.TotalProjects > 0 {
		summary.ProfitablePercentage = decimal.NewFromInt(int64(summary.ProfitableProjects)).
			Div(decimal.NewFromInt(int64(summary.TotalProjects))).
			Mul(decimal.NewFromInt(100))
	}

	s.LogInfo(ctx, "Portfolio summary calculated",
		"total_projects", summary.TotalProjects,
		"profitable_projects", summary.ProfitableProjects)
	return summary, nil
}
