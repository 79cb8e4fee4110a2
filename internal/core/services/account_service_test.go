package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	"github.com/soildynamics/geoledger/internal/core/services"
	"github.com/soildynamics/geoledger/internal/dto"
)

func TestAccountService_GetAccountByCode(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	svc := services.NewAccountService(mockAccountRepo)

	account := &domain.Account{AccountCode: "1102", Name: "Bank", AccountType: domain.Asset, Category: "Bank"}
	mockAccountRepo.On("FindAccountByCode", ctx, "1102").Return(account, nil).Once()

	got, err := svc.GetAccountByCode(ctx, "1102")

	require.NoError(t, err)
	assert.Equal(t, account, got)
	mockAccountRepo.AssertExpectations(t)
}

func TestAccountService_GetAccountByCode_NotFound(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	svc := services.NewAccountService(mockAccountRepo)

	mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetAccountByCode(ctx, "9999")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountService_ListAccounts(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	svc := services.NewAccountService(mockAccountRepo)

	mockAccountRepo.On("ListAccounts", ctx).Return(domain.ReferenceAccounts, nil).Once()

	accounts, err := svc.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Len(t, accounts, len(domain.ReferenceAccounts))
}

func TestTransactionService_ListTransactionsByAccount(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockTxnRepo)

	transactions := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountCode: "1102", EntryType: domain.Debit, Amount: decimal.NewFromInt(1000)},
	}
	mockTxnRepo.On("ListTransactionsByAccountCode", ctx, "1102", 5, (*string)(nil)).
		Return(transactions, "opaque-token", nil).Once()

	resp, err := svc.ListTransactionsByAccount(ctx, "1102", dto.ListTransactionsParams{Limit: 5})

	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	require.NotNil(t, resp.NextToken)
	assert.Equal(t, "opaque-token", *resp.NextToken)
	mockTxnRepo.AssertExpectations(t)
}

func TestTransactionService_ListTransactionsByAccount_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockTxnRepo)

	mockTxnRepo.On("ListTransactionsByAccountCode", ctx, "1102", 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := svc.ListTransactionsByAccount(ctx, "1102", dto.ListTransactionsParams{})

	require.NoError(t, err)
	assert.Empty(t, resp.Transactions)
	assert.Nil(t, resp.NextToken)
	mockTxnRepo.AssertExpectations(t)
}
