package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchedulePeriod is one month of a straight-line depreciation schedule.
type SchedulePeriod struct {
	Date                    time.Time       `json:"date"`
	Depreciation            decimal.Decimal `json:"depreciation"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// ProjectWIP is the earned-value work-in-progress position of one project.
// EarnedValueWIP may be negative (over-billed); that is a valid signal.
type ProjectWIP struct {
	ProjectID      string          `json:"projectID"`
	ProjectCode    string          `json:"projectCode"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	Progress       decimal.Decimal `json:"progress"`
	EarnedValue    decimal.Decimal `json:"earnedValue"`
	TotalBilled    decimal.Decimal `json:"totalBilled"`
	EarnedValueWIP decimal.Decimal `json:"earnedValueWip"`
}

// ProjectProfitability is the per-project margin/ROI roll-up.
//
// Two WIP figures coexist deliberately: EarnedValueWIP (contract value x
// progress minus billed, see ProjectWIP) and CostBasisWIP (costs minus
// billed) measure different things and are reported under distinct names
// rather than reconciled.
type ProjectProfitability struct {
	ProjectID       string          `json:"projectID"`
	ProjectCode     string          `json:"projectCode"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	DirectCosts     decimal.Decimal `json:"directCosts"`
	IndirectCosts   decimal.Decimal `json:"indirectCosts"`
	TotalCosts      decimal.Decimal `json:"totalCosts"`
	DirectBillings  decimal.Decimal `json:"directBillings"`
	IndirectRevenue decimal.Decimal `json:"indirectRevenue"`
	TotalBilled     decimal.Decimal `json:"totalBilled"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	ProfitMargin    decimal.Decimal `json:"profitMargin"` // % of contract value
	CostRatio       decimal.Decimal `json:"costRatio"`    // % of contract value
	ROI             decimal.Decimal `json:"roi"`          // % of total costs
	Completion      decimal.Decimal `json:"completion"`   // % complete
	CostBasisWIP    decimal.Decimal `json:"costBasisWip"`
	IsProfitable    bool            `json:"isProfitable"`
}

// PortfolioSummary aggregates profitability across all projects.
type PortfolioSummary struct {
	TotalProjects        int             `json:"totalProjects"`
	ProfitableProjects   int             `json:"profitableProjects"`
	ProfitablePercentage decimal.Decimal `json:"profitablePercentage"`
	TotalValue           decimal.Decimal `json:"totalValue"`
	TotalCosts           decimal.Decimal `json:"totalCosts"`
	TotalBilled          decimal.Decimal `json:"totalBilled"`
	GrossProfit          decimal.Decimal `json:"grossProfit"`
	Projects             []ProjectProfitability `json:"projects"`
}
