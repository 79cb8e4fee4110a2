package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/handlers"
	"github.com/soildynamics/geoledger/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionService = (*MockTransactionService)(nil)

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountCode string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, accountCode, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingService = (*MockPostingService)(nil)

func (m *MockPostingService) AcquireAsset(ctx context.Context, req dto.AcquireAssetRequest, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.FixedAsset), args.Get(1).([]domain.Transaction), args.Error(2)
}

func (m *MockPostingService) AdjustAssetValue(ctx context.Context, assetID string, newValue decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	args := m.Called(ctx, assetID, newValue, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.FixedAsset), args.Get(1).([]domain.Transaction), args.Error(2)
}

func (m *MockPostingService) AdjustAssetDepreciation(ctx context.Context, assetID string, newAccumulated decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	args := m.Called(ctx, assetID, newAccumulated, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.FixedAsset), args.Get(1).([]domain.Transaction), args.Error(2)
}

func (m *MockPostingService) DisposeAsset(ctx context.Context, assetID string, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, assetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockPostingService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockPostingService) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

// --- Mock DepreciationCalculator ---
type MockDepreciationCalculator struct {
	mock.Mock
}

var _ portssvc.DepreciationCalculator = (*MockDepreciationCalculator)(nil)

func (m *MockDepreciationCalculator) AccumulatedDepreciation(value decimal.Decimal, usefulLifeYears int, acquisitionDate, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(value, usefulLifeYears, acquisitionDate, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDepreciationCalculator) BookValue(value, accumulated decimal.Decimal) decimal.Decimal {
	args := m.Called(value, accumulated)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockDepreciationCalculator) MonthlySchedule(asset domain.FixedAsset) (iter.Seq[domain.SchedulePeriod], error) {
	args := m.Called(asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq[domain.SchedulePeriod]), args.Error(1)
}

// --- Mock WIPService ---
type MockWIPService struct {
	mock.Mock
}

var _ portssvc.WIPService = (*MockWIPService)(nil)

func (m *MockWIPService) ProjectWIP(ctx context.Context, projectID string) (*domain.ProjectWIP, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectWIP), args.Error(1)
}

func (m *MockWIPService) RecalculateAll(ctx context.Context) ([]domain.ProjectWIP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectWIP), args.Error(1)
}

// --- Mock CashFlowService ---
type MockCashFlowService struct {
	mock.Mock
}

var _ portssvc.CashFlowService = (*MockCashFlowService)(nil)

func (m *MockCashFlowService) Report(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}

// --- Mock ProfitabilityService ---
type MockProfitabilityService struct {
	mock.Mock
}

var _ portssvc.ProfitabilityService = (*MockProfitabilityService)(nil)

func (m *MockProfitabilityService) ProjectProfitability(ctx context.Context, projectID string) (*domain.ProjectProfitability, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectProfitability), args.Error(1)
}

func (m *MockProfitabilityService) Portfolio(ctx context.Context) (*domain.PortfolioSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioSummary), args.Error(1)
}

// --- Test Suite Setup ---
const testJWTSecret = "test-secret-do-not-use-outside-tests"

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAccountSvc  *MockAccountService
	mockTxnSvc      *MockTransactionService
	mockPostingSvc  *MockPostingService
	mockDepreciation *MockDepreciationCalculator
	mockWIPSvc      *MockWIPService
	mockCashFlowSvc *MockCashFlowService
	mockProfitSvc   *MockProfitabilityService
	userID          string
	token           string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockTxnSvc = new(MockTransactionService)
	suite.mockPostingSvc = new(MockPostingService)
	suite.mockDepreciation = new(MockDepreciationCalculator)
	suite.mockWIPSvc = new(MockWIPService)
	suite.mockCashFlowSvc = new(MockCashFlowService)
	suite.mockProfitSvc = new(MockProfitabilityService)

	container := &portssvc.ServiceContainer{
		Account:       suite.mockAccountSvc,
		Transaction:   suite.mockTxnSvc,
		Posting:       suite.mockPostingSvc,
		Depreciation:  suite.mockDepreciation,
		WIP:           suite.mockWIPSvc,
		CashFlow:      suite.mockCashFlowSvc,
		Profitability: suite.mockProfitSvc,
	}

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)

	suite.userID = uuid.NewString()
	suite.token = suite.makeToken(suite.userID)
}

func (suite *HandlerTestSuite) makeToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestRequiresAuthentication() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts() {
	accounts := []domain.Account{
		{AccountCode: "1102", Name: "Bank", AccountType: domain.Asset, Category: "Bank"},
		{AccountCode: "6105", Name: "Depreciation Expense", AccountType: domain.Expense, Category: "Operating Expenses"},
	}
	suite.mockAccountSvc.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Equal("1102", got[0].AccountCode)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountSvc.On("GetAccountByCode", mock.Anything, "9999").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/v1/accounts/9999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAcquireAsset() {
	req := dto.AcquireAssetRequest{
		AssetName:       "CPT Rig",
		Category:        "EQUIPMENT",
		AcquisitionDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Value:           decimal.NewFromInt(50000000),
		UsefulLifeYears: 5,
	}
	asset := &domain.FixedAsset{
		AssetID:         uuid.NewString(),
		AssetName:       req.AssetName,
		Category:        domain.CategoryEquipment,
		AcquisitionDate: req.AcquisitionDate,
		Value:           req.Value,
		UsefulLifeYears: req.UsefulLifeYears,
		BookValue:       req.Value,
	}

	suite.mockPostingSvc.On("AcquireAsset", mock.Anything, mock.AnythingOfType("dto.AcquireAssetRequest"), suite.userID).
		Return(asset, []domain.Transaction{}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/assets", req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(asset.AssetID, got.AssetID)
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAcquireAsset_ValidationError() {
	req := dto.AcquireAssetRequest{
		AssetName:       "Bad Category",
		Category:        "FURNITURE",
		AcquisitionDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Value:           decimal.NewFromInt(1000),
		UsefulLifeYears: 5,
	}

	suite.mockPostingSvc.On("AcquireAsset", mock.Anything, mock.AnythingOfType("dto.AcquireAssetRequest"), suite.userID).
		Return(nil, nil, fmt.Errorf("%w: unknown asset category", apperrors.ErrValidation)).Once()

	w := suite.request(http.MethodPost, "/api/v1/assets", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCashFlowReport_InvalidDates() {
	w := suite.request(http.MethodGet, "/api/v1/reports/cashflow?from=not-a-date&to=2025-12-31", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/reports/cashflow?from=2025-12-31&to=2025-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCashFlowReport() {
	report := &domain.CashFlowReport{
		Operating:   domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.NewFromInt(500)},
		Investing:   domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.Zero},
		Financing:   domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.Zero},
		NetCashFlow: decimal.NewFromInt(500),
	}
	suite.mockCashFlowSvc.On("Report", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(report, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/reports/cashflow?from=2025-01-01&to=2025-12-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCashFlowSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_RequiresAccountCode() {
	w := suite.request(http.MethodGet, "/api/v1/transactions", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions() {
	resp := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}
	suite.mockTxnSvc.On("ListTransactionsByAccount", mock.Anything, "1102", mock.AnythingOfType("dto.ListTransactionsParams")).
		Return(resp, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/transactions?accountCode=1102", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
