package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// Percentages are carried at full precision inside the engine and rounded
// to two decimal places here, at the boundary only.

// ProjectWIPResponse is the earned-value WIP position of one project.
type ProjectWIPResponse struct {
	ProjectID      string          `json:"projectID"`
	ProjectCode    string          `json:"projectCode"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	Progress       decimal.Decimal `json:"progress"`
	EarnedValue    decimal.Decimal `json:"earnedValue"`
	TotalBilled    decimal.Decimal `json:"totalBilled"`
	EarnedValueWIP decimal.Decimal `json:"earnedValueWip"`
}

// ToProjectWIPResponse converts a domain.ProjectWIP.
func ToProjectWIPResponse(w *domain.ProjectWIP) ProjectWIPResponse {
	return ProjectWIPResponse{
		ProjectID:      w.ProjectID,
		ProjectCode:    w.ProjectCode,
		TotalValue:     w.TotalValue,
		Progress:       w.Progress.Round(2),
		EarnedValue:    w.EarnedValue,
		TotalBilled:    w.TotalBilled,
		EarnedValueWIP: w.EarnedValueWIP,
	}
}

// ToProjectWIPResponses converts a slice of WIP positions.
func ToProjectWIPResponses(wips []domain.ProjectWIP) []ProjectWIPResponse {
	res := make([]ProjectWIPResponse, len(wips))
	for i := range wips {
		res[i] = ToProjectWIPResponse(&wips[i])
	}
	return res
}

// ProjectProfitabilityResponse is the per-project profitability roll-up.
// EarnedValueWip and CostBasisWip are distinct metrics and both reported.
type ProjectProfitabilityResponse struct {
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
	ProfitMargin    decimal.Decimal `json:"profitMargin"`
	CostRatio       decimal.Decimal `json:"costRatio"`
	ROI             decimal.Decimal `json:"roi"`
	Completion      decimal.Decimal `json:"completion"`
	CostBasisWIP    decimal.Decimal `json:"costBasisWip"`
	IsProfitable    bool            `json:"isProfitable"`
}

// ToProjectProfitabilityResponse converts a domain.ProjectProfitability,
// rounding percentage outputs to 2dp.
func ToProjectProfitabilityResponse(p *domain.ProjectProfitability) ProjectProfitabilityResponse {
	return ProjectProfitabilityResponse{
		ProjectID:       p.ProjectID,
		ProjectCode:     p.ProjectCode,
		TotalValue:      p.TotalValue,
		DirectCosts:     p.DirectCosts,
		IndirectCosts:   p.IndirectCosts,
		TotalCosts:      p.TotalCosts,
		DirectBillings:  p.DirectBillings,
		IndirectRevenue: p.IndirectRevenue,
		TotalBilled:     p.TotalBilled,
		GrossProfit:     p.GrossProfit,
		ProfitMargin:    p.ProfitMargin.Round(2),
		CostRatio:       p.CostRatio.Round(2),
		ROI:             p.ROI.Round(2),
		Completion:      p.Completion.Round(2),
		CostBasisWIP:    p.CostBasisWIP,
		IsProfitable:    p.IsProfitable,
	}
}

// PortfolioSummaryResponse aggregates profitability across all projects.
type PortfolioSummaryResponse struct {
	TotalProjects        int                            `json:"totalProjects"`
	ProfitableProjects   int                            `json:"profitableProjects"`
	ProfitablePercentage decimal.Decimal                `json:"profitablePercentage"`
	TotalValue           decimal.Decimal                `json:"totalValue"`
	TotalCosts           decimal.Decimal                `json:"totalCosts"`
	TotalBilled          decimal.Decimal                `json:"totalBilled"`
	GrossProfit          decimal.Decimal                `json:"grossProfit"`
	Projects             []ProjectProfitabilityResponse `json:"projects"`
}

// ToPortfolioSummaryResponse converts a domain.PortfolioSummary.
func ToPortfolioSummaryResponse(s *domain.PortfolioSummary) PortfolioSummaryResponse {
	projects := make([]ProjectProfitabilityResponse, len(s.Projects))
	for i := range s.Projects {
		projects[i] = ToProjectProfitabilityResponse(&s.Projects[i])
	}
	return PortfolioSummaryResponse{
		TotalProjects:        s.TotalProjects,
		ProfitableProjects:   s.ProfitableProjects,
		ProfitablePercentage: s.ProfitablePercentage.Round(2),
		TotalValue:           s.TotalValue,
		TotalCosts:           s.TotalCosts,
		TotalBilled:          s.TotalBilled,
		GrossProfit:          s.GrossProfit,
		Projects:             projects,
	}
}

// CashFlowEntryResponse is one classified transaction in a report bucket.
type CashFlowEntryResponse struct {
	TransactionID string                  `json:"transactionID"`
	Date          time.Time               `json:"date"`
	AccountCode   string                  `json:"accountCode"`
	Subcategory   string                  `json:"subcategory"`
	Description   string                  `json:"description"`
	Category      domain.ActivityCategory `json:"category"`
	SignedCash    decimal.Decimal         `json:"signedCash"`
}

// CashFlowSectionResponse is one activity bucket with its total.
type CashFlowSectionResponse struct {
	Entries []CashFlowEntryResponse `json:"entries"`
	Total   decimal.Decimal         `json:"total"`
}

// CashFlowReportResponse is the full cash-flow statement for a period.
type CashFlowReportResponse struct {
	From                 time.Time               `json:"from"`
	To                   time.Time               `json:"to"`
	Operating            CashFlowSectionResponse `json:"operating"`
	Investing            CashFlowSectionResponse `json:"investing"`
	Financing            CashFlowSectionResponse `json:"financing"`
	NetCashFlow          decimal.Decimal         `json:"netCashFlow"`
	ExcludedCount        int                     `json:"excludedCount"`
	UnmappedAccountCodes []string                `json:"unmappedAccountCodes,omitempty"`
}

func toCashFlowSectionResponse(s domain.CashFlowSection) CashFlowSectionResponse {
	entries := make([]CashFlowEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = CashFlowEntryResponse{
			TransactionID: e.TransactionID,
			Date:          e.Date,
			AccountCode:   e.AccountCode,
			Subcategory:   e.Subcategory,
			Description:   e.Description,
			Category:      e.ActivityCategory,
			SignedCash:    e.SignedCash,
		}
	}
	return CashFlowSectionResponse{Entries: entries, Total: s.Total}
}

// ToCashFlowReportResponse converts a domain.CashFlowReport.
func ToCashFlowReportResponse(r *domain.CashFlowReport, from, to time.Time) CashFlowReportResponse {
	return CashFlowReportResponse{
		From:                 from,
		To:                   to,
		Operating:            toCashFlowSectionResponse(r.Operating),
		Investing:            toCashFlowSectionResponse(r.Investing),
		Financing:            toCashFlowSectionResponse(r.Financing),
		NetCashFlow:          r.NetCashFlow,
		ExcludedCount:        r.ExcludedCount,
		UnmappedAccountCodes: r.UnmappedAccountCodes,
	}
}
