package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	Date          time.Time        `json:"date"`
	EntryType     domain.EntryType `json:"entryType"`
	FlowTag       domain.FlowTag   `json:"flowTag"`
	AccountCode   string           `json:"accountCode"`
	Amount        decimal.Decimal  `json:"amount"`
	ProjectID     *string          `json:"projectID,omitempty"`
	Description   string           `json:"description"`
	Notes         string           `json:"notes,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		EntryType:     t.EntryType,
		FlowTag:       t.FlowTag,
		AccountCode:   t.AccountCode,
		Amount:        t.Amount,
		ProjectID:     t.ProjectID,
		Description:   t.Description,
		Notes:         t.Notes,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions with a continuation token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
