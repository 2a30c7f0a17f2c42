package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/core/services"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChange decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChange)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// MockCategoryReader is a mock type for the CategoryReader interface
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpensePassesNegativeEffect() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	amount := decimal.NewFromFloat(42.50)
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Expense,
		Amount:          amount,
		Description:     "Groceries",
		Date:            time.Now(),
		AccountID:       accountID,
		CategoryID:      categoryID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, userID, categoryID).
		Return(&domain.ExpenseCategory{CategoryID: categoryID, UserID: userID}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(change decimal.Decimal) bool {
		return change.Equal(amount.Neg())
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Expense, txn.TransactionType)
	suite.Equal(categoryID, txn.CategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeDropsCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(5000)
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Income,
		Amount:          amount,
		Description:     "Salary",
		Date:            time.Now(),
		AccountID:       accountID,
		CategoryID:      uuid.NewString(), // must be ignored for income
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == "" && txn.TransactionType == domain.Income
	}), mock.MatchedBy(func(change decimal.Decimal) bool {
		return change.Equal(amount)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Empty(txn.CategoryID)
	// The category lookup must not run for income transactions.
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Expense,
		Amount:          decimal.Zero,
		Description:     "Nothing",
		Date:            time.Now(),
		AccountID:       uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(10),
		Description:     "Coffee",
		Date:            time.Now(),
		AccountID:       accountID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesTokenThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	params := dto.ListTransactionsParams{Limit: 10, NextToken: "opaque-cursor"}
	stored := []domain.Transaction{{TransactionID: uuid.NewString(), UserID: userID}}

	suite.mockRepo.On("ListTransactions", ctx, userID, 10, "opaque-cursor").
		Return(stored, "next-cursor", nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.Equal("next-cursor", nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_SwitchToIncomeClearsCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	accountID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID:   transactionID,
		UserID:          userID,
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(100),
		AccountID:       accountID,
		CategoryID:      uuid.NewString(),
	}
	newType := domain.Income
	req := dto.UpdateTransactionRequest{TransactionType: &newType}

	suite.mockRepo.On("FindTransactionByID", ctx, userID, transactionID).Return(stored, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionType == domain.Income && txn.CategoryID == ""
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, userID, transactionID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Income, txn.TransactionType)
	suite.Empty(txn.CategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, userID, transactionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, userID, transactionID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
