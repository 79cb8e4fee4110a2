package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "PLANNED"
	ProjectOngoing   ProjectStatus = "ONGOING"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
)

// CostStatus indicates the approval state of a project cost.
type CostStatus string

const (
	CostPending  CostStatus = "PENDING"
	CostApproved CostStatus = "APPROVED"
	CostRejected CostStatus = "REJECTED"
)

// BillingStatus indicates the payment state of a billing.
type BillingStatus string

const (
	BillingPending BillingStatus = "PENDING"
	BillingPaid    BillingStatus = "PAID"
	BillingOverdue BillingStatus = "OVERDUE"
)

// Project represents an engagement with a client. Progress is a percentage
// in [0, 100]; WIP is always derived from it, never stored as ground truth.
type Project struct {
	ProjectID    string          `json:"projectID"`   // Primary Key (UUID)
	ProjectCode  string          `json:"projectCode"` // Unique business key
	Name         string          `json:"name"`
	TotalValue   decimal.Decimal `json:"totalValue"` // Contract value, > 0
	Progress     decimal.Decimal `json:"progress"`   // Percent complete, clamped to [0, 100]
	Status       ProjectStatus   `json:"status"`
	Costs        []ProjectCost   `json:"costs,omitempty"`
	Billings     []Billing       `json:"billings,omitempty"`
	Transactions []Transaction   `json:"transactions,omitempty"`
	AuditFields
}

// ProjectCost is a direct cost booked against a project.
type ProjectCost struct {
	CostID    string          `json:"costID"`
	ProjectID string          `json:"projectID"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"` // > 0
	Date      time.Time       `json:"date"`
	Status    CostStatus      `json:"status"`
	AuditFields
}

// Billing is a progress billing issued against a project.
type Billing struct {
	BillingID   string          `json:"billingID"`
	ProjectID   string          `json:"projectID"`
	BillingDate time.Time       `json:"billingDate"`
	Percentage  decimal.Decimal `json:"percentage"` // 0 < x <= 100
	Amount      decimal.Decimal `json:"amount"`     // > 0
	Status      BillingStatus   `json:"status"`
	AuditFields
}

var hundred = decimal.NewFromInt(100)

// ClampedProgress returns the project progress saturated into [0, 100].
func (p Project) ClampedProgress() decimal.Decimal {
	if p.Progress.IsNegative() {
		return decimal.Zero
	}
	if p.Progress.GreaterThan(hundred) {
		return hundred
	}
	return p.Progress
}

// TotalBilled sums the amounts of all billings on the project.
func (p Project) TotalBilled() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Billings {
		total = total.Add(b.Amount)
	}
	return total
}
