package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger transaction is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// FlowTag classifies a transaction for project profitability roll-ups.
// It is orthogonal to the debit/credit direction: the direction drives cash
// classification, the tag drives cost/revenue attribution.
type FlowTag string

const (
	FlowNone        FlowTag = "NONE"
	FlowRevenue     FlowTag = "REVENUE"
	FlowExpense     FlowTag = "EXPENSE"
	FlowWIPIncrease FlowTag = "WIP_INCREASE"
	FlowWIPDecrease FlowTag = "WIP_DECREASE"
)

// Transaction represents a single ledger entry affecting one account.
// Amount is always a non-negative magnitude; direction is carried by EntryType.
// Transactions are never mutated after classification, only superseded by new
// correcting postings.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`
	EntryType     EntryType       `json:"entryType"`
	FlowTag       FlowTag         `json:"flowTag"`
	AccountCode   string          `json:"accountCode"` // FK -> Account.accountCode
	Amount        decimal.Decimal `json:"amount"`      // Non-negative magnitude
	ProjectID     *string         `json:"projectID"`   // Nullable
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
	AuditFields
}

// NormalizeEntryType folds the legacy transaction-type vocabularies into the
// internal (EntryType, FlowTag) pair and a non-negative magnitude.
//
// Callers historically recorded any of: debit/credit, income/expense,
// REVENUE/EXPENSE, WIP_INCREASE/WIP_DECREASE, sometimes with signed amounts.
// The convention here: income-like entries are cash inflows (debit on the
// relevant account), expense-like entries are outflows (credit). A negative
// amount flips the direction and the magnitude is taken absolute.
func NormalizeEntryType(rawType string, amount decimal.Decimal) (EntryType, FlowTag, decimal.Decimal, error) {
	var entry EntryType
	tag := FlowNone

	switch strings.ToUpper(strings.TrimSpace(rawType)) {
	case "DEBIT":
		entry = Debit
	case "CREDIT":
		entry = Credit
	case "INCOME", "REVENUE":
		entry = Debit
		tag = FlowRevenue
	case "EXPENSE":
		entry = Credit
		tag = FlowExpense
	case "WIP_INCREASE":
		entry = Credit
		tag = FlowWIPIncrease
	case "WIP_DECREASE":
		entry = Debit
		tag = FlowWIPDecrease
	default:
		return "", "", decimal.Zero, fmt.Errorf("unknown transaction type %q", rawType)
	}

	if amount.IsNegative() {
		if entry == Debit {
			entry = Credit
		} else {
			entry = Debit
		}
		amount = amount.Abs()
	}

	return entry, tag, amount, nil
}

// SignedAmount returns the cash-directional amount of the transaction:
// positive for a debit (inflow), negative for a credit (outflow).
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.EntryType == Credit {
		return t.Amount.Neg()
	}
	return t.Amount
}
