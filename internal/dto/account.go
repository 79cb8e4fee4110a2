package dto

import (
	"github.com/soildynamics/geoledger/internal/core/domain"
)

// AccountResponse defines the data returned for a directory account.
type AccountResponse struct {
	AccountCode string             `json:"accountCode"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Category    string             `json:"category"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountCode: acc.AccountCode,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Category:    acc.Category,
	}
}

// ToListAccountResponse converts a slice of domain.Account.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
