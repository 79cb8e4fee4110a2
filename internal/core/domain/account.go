package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents an entry in the firm's account directory.
// Accounts are reference data: created at setup, never mutated by the engine.
type Account struct {
	AccountCode string      `json:"accountCode"` // Unique string key, e.g. "1501"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Category    string      `json:"category"` // Free-text grouping, e.g. "Fixed Assets", "Bank"
	AuditFields
}
