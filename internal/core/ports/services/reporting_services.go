package services

import (
	"context"
	"time"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// WIPService computes earned-value work-in-progress per project.
// Pure reads over project snapshots; WIP is never persisted.
type WIPService interface {
	// ProjectWIP computes the earned-value WIP position of one project.
	ProjectWIP(ctx context.Context, projectID string) (*domain.ProjectWIP, error)

	// RecalculateAll computes WIP for every project. Idempotent: the same
	// snapshot always yields the same values.
	RecalculateAll(ctx context.Context) ([]domain.ProjectWIP, error)
}

// CashFlowService classifies ledger transactions into the three cash-flow
// activity categories and aggregates per-bucket totals.
type CashFlowService interface {
	// Report classifies all transactions dated within [from, to] and
	// aggregates them. Transactions on unmapped account codes are excluded
	// from the buckets but counted in the result.
	Report(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)
}

// ProfitabilityService rolls up project costs, billings, and classified
// transactions into margin/ROI/completion metrics.
type ProfitabilityService interface {
	// ProjectProfitability computes the roll-up for one project.
	ProjectProfitability(ctx context.Context, projectID string) (*domain.ProjectProfitability, error)

	// Portfolio summarizes profitability across all projects.
	Portfolio(ctx context.Context) (*domain.PortfolioSummary, error)
}
