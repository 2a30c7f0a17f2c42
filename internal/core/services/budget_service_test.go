package services_test

import (
	"context"
	"testing"

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

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockBudgetRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewBudgetService(suite.mockRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_DefaultsToMonthlyPeriod() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateBudgetRequest{
		Name:   "Groceries",
		Amount: decimal.NewFromInt(800),
	}

	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(budget domain.Budget) bool {
		return budget.UserID == userID && budget.Period == "monthly"
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal("monthly", budget.Period)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:   "Bad",
		Amount: decimal.NewFromInt(-10),
	}

	budget, err := suite.service.CreateBudget(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateBudgetRequest{
		Name:       "Dining",
		Amount:     decimal.NewFromInt(400),
		CategoryID: categoryID,
		Period:     "weekly",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	budget, err := suite.service.CreateBudget(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget")
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_MergesProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	budgetID := uuid.NewString()
	newAmount := decimal.NewFromInt(1000)
	stored := &domain.Budget{
		BudgetID: budgetID,
		UserID:   userID,
		Name:     "Groceries",
		Amount:   decimal.NewFromInt(800),
		Period:   "monthly",
	}

	suite.mockRepo.On("FindBudgetByID", ctx, userID, budgetID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateBudget", ctx, mock.MatchedBy(func(budget domain.Budget) bool {
		return budget.Name == "Groceries" && budget.Amount.Equal(newAmount) && budget.Period == "monthly"
	})).Return(nil).Once()

	budget, err := suite.service.UpdateBudget(ctx, userID, budgetID, dto.UpdateBudgetRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(newAmount.Equal(budget.Amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	budgetID := uuid.NewString()

	suite.mockRepo.On("DeleteBudget", ctx, userID, budgetID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBudget(ctx, userID, budgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
