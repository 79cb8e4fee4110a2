package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// SumByEntryType returns the debit and credit totals of a set of legs.
func SumByEntryType(legs []domain.Transaction) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, leg := range legs {
		if leg.EntryType == domain.Debit {
			debits = debits.Add(leg.Amount)
		} else {
			credits = credits.Add(leg.Amount)
		}
	}
	return debits, credits
}

// ValidateBalancedPosting checks that a posting's legs form a valid
// double-entry set: at least two legs, every amount strictly positive, and
// total debits equal to total credits.
func ValidateBalancedPosting(legs []domain.Transaction) error {
	if len(legs) < 2 {
		return fmt.Errorf("posting must have at least two legs, got %d", len(legs))
	}

	for _, leg := range legs {
		if leg.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("leg amount must be positive for account %s, got %s", leg.AccountCode, leg.Amount)
		}
	}

	debits, credits := SumByEntryType(legs)
	if !debits.Equal(credits) {
		return fmt.Errorf("posting does not balance: debits sum is %s and credits sum is %s",
			debits.String(), credits.String())
	}

	return nil
}
