package domain

import "github.com/shopspring/decimal"

// ActivityCategory is one of the three statement-of-cash-flows activities.
type ActivityCategory string

const (
	Operating ActivityCategory = "OPERATING"
	Investing ActivityCategory = "INVESTING"
	Financing ActivityCategory = "FINANCING"
)

// CashFlowCategoryEntry maps an account code to a cash-flow activity.
// One entry per account code; accounts absent from the map are excluded
// from cash-flow reporting (the exclusion is counted, not silent).
type CashFlowCategoryEntry struct {
	AccountCode      string           `json:"accountCode"` // Unique, references Account
	ActivityCategory ActivityCategory `json:"activityCategory"`
	Subcategory      string           `json:"subcategory"` // Free text
	AuditFields
}

// ClassifiedTransaction is a ledger transaction placed into an activity
// bucket with its cash-directional amount resolved.
type ClassifiedTransaction struct {
	Transaction
	ActivityCategory ActivityCategory `json:"activityCategory"`
	Subcategory      string           `json:"subcategory"`
	SignedCash       decimal.Decimal  `json:"signedCash"` // +inflow / -outflow
}

// CashFlowSection is one activity bucket of the cash-flow statement.
type CashFlowSection struct {
	Entries []ClassifiedTransaction `json:"entries"`
	Total   decimal.Decimal         `json:"total"` // Sum of signed amounts
}

// CashFlowReport is the engine's cash-flow statement aggregate.
// NetCashFlow always equals Operating.Total + Investing.Total +
// Financing.Total, which in turn equals the sum of every signed entry.
// ExcludedCount and UnmappedAccountCodes surface transactions dropped
// because their account code has no category mapping.
type CashFlowReport struct {
	Operating            CashFlowSection `json:"operating"`
	Investing            CashFlowSection `json:"investing"`
	Financing            CashFlowSection `json:"financing"`
	NetCashFlow          decimal.Decimal `json:"netCashFlow"`
	ExcludedCount        int             `json:"excludedCount"`
	UnmappedAccountCodes []string        `json:"unmappedAccountCodes,omitempty"`
}
