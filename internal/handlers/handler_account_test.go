package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/granaflow/granaflow/internal/handlers"
	"github.com/granaflow/granaflow/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountService) AdjustBalance(ctx context.Context, userID string, accountID string, req dto.AdjustBalanceRequest) (*domain.BalanceAdjustment, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceAdjustment), args.Error(1)
}

func (m *MockAccountService) ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceAdjustment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "granaflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
}

func (suite *AccountHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		Name:        "Nubank",
		AccountType: domain.Checking,
		Color:       "#8A05BE",
	}
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        "Nubank",
		AccountType: domain.Checking,
		Balance:     decimal.Zero,
		Color:       "#8A05BE",
	}

	suite.mockAccountService.On("CreateAccount",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Name == "Nubank" && req.AccountType == domain.Checking
		}),
	).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authedRequest(http.MethodPost, "/api/v1/accounts", body, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.AccountResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal(created.AccountID, responseBody.AccountID)
	suite.Equal("Nubank", responseBody.Name)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	userID := uuid.NewString()
	body := []byte(`{"name":"Broken","accountType":"credit-card"}`)

	w := suite.authedRequest(http.MethodPost, "/api/v1/accounts", body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	userID := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(1200)},
		{AccountID: uuid.NewString(), UserID: userID, Name: "Savings", Balance: decimal.NewFromInt(5400)},
	}

	suite.mockAccountService.On("ListAccounts",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
	).Return(accounts, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/accounts", nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListAccountsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Len(responseBody.Accounts, 2)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		accountID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s", accountID), nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestAdjustBalance_Success() {
	userID := uuid.NewString()
	accountID := uuid.NewString()
	newBalance := decimal.NewFromFloat(1523.77)
	adjustment := &domain.BalanceAdjustment{
		AdjustmentID: uuid.NewString(),
		AccountID:    accountID,
		OldBalance:   decimal.NewFromInt(1500),
		NewBalance:   newBalance,
		Reason:       "Bank statement reconciliation",
	}

	suite.mockAccountService.On("AdjustBalance",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		accountID,
		mock.MatchedBy(func(req dto.AdjustBalanceRequest) bool {
			return req.NewBalance.Equal(newBalance)
		}),
	).Return(adjustment, nil).Once()

	body, _ := json.Marshal(dto.AdjustBalanceRequest{
		NewBalance: newBalance,
		Reason:     "Bank statement reconciliation",
	})
	w := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/adjust-balance", accountID), body, userID)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.BalanceAdjustmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.True(newBalance.Equal(responseBody.NewBalance))
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_MissingToken() {
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/accounts/%s", uuid.NewString()), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "DeleteAccount")
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
