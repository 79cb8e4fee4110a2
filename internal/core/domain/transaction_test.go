package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntryType(t *testing.T) {
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name       string
		rawType    string
		amount     decimal.Decimal
		wantEntry  EntryType
		wantTag    FlowTag
		wantAmount decimal.Decimal
	}{
		{"debit passes through", "DEBIT", amount, Debit, FlowNone, amount},
		{"credit passes through", "CREDIT", amount, Credit, FlowNone, amount},
		{"lowercase accepted", "debit", amount, Debit, FlowNone, amount},
		{"whitespace trimmed", "  CREDIT  ", amount, Credit, FlowNone, amount},
		{"income is a cash inflow", "INCOME", amount, Debit, FlowRevenue, amount},
		{"revenue is a cash inflow", "REVENUE", amount, Debit, FlowRevenue, amount},
		{"expense is a cash outflow", "EXPENSE", amount, Credit, FlowExpense, amount},
		{"wip increase books like an expense", "WIP_INCREASE", amount, Credit, FlowWIPIncrease, amount},
		{"wip decrease books like revenue", "WIP_DECREASE", amount, Debit, FlowWIPDecrease, amount},
		{"negative amount flips debit to credit", "DEBIT", amount.Neg(), Credit, FlowNone, amount},
		{"negative amount flips credit to debit", "CREDIT", amount.Neg(), Debit, FlowNone, amount},
		{"negative expense flips to inflow", "EXPENSE", amount.Neg(), Debit, FlowExpense, amount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, tag, got, err := NormalizeEntryType(tt.rawType, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEntry, entry)
			assert.Equal(t, tt.wantTag, tag)
			assert.True(t, got.Equal(tt.wantAmount), "got %s", got)
		})
	}
}

func TestNormalizeEntryType_Unknown(t *testing.T) {
	_, _, _, err := NormalizeEntryType("TRANSFER", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRANSFER")
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(250)

	debit := Transaction{EntryType: Debit, Amount: amount}
	assert.True(t, debit.SignedAmount().Equal(amount))

	credit := Transaction{EntryType: Credit, Amount: amount}
	assert.True(t, credit.SignedAmount().Equal(amount.Neg()))
}
