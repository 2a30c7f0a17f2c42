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

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

func (m *MockGoalRepository) ReserveFunds(ctx context.Context, userID string, goalID string, accountID string, amount decimal.Decimal, reservedBy string, now time.Time) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID, accountID, amount, reservedBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// --- Test Suite Setup ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_DefaultsToMediumPriority() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateGoalRequest{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(10000),
	}

	suite.mockRepo.On("SaveGoal", ctx, mock.MatchedBy(func(goal domain.Goal) bool {
		return goal.Priority == domain.PriorityMedium && goal.CurrentAmount.IsZero()
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PriorityMedium, goal.Priority)
	suite.True(goal.CurrentAmount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Zero goal",
		TargetAmount: decimal.Zero,
	}

	goal, err := suite.service.CreateGoal(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestReserveFunds_DelegatesToRepo() {
	ctx := context.Background()
	userID := uuid.NewString()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(500)
	req := dto.ReserveFundsRequest{AccountID: accountID, Amount: amount}
	expected := &domain.Goal{
		GoalID:        goalID,
		UserID:        userID,
		CurrentAmount: decimal.NewFromInt(1500),
	}

	suite.mockRepo.On("ReserveFunds", ctx, userID, goalID, accountID, amount, userID, mock.AnythingOfType("time.Time")).
		Return(expected, nil).Once()

	goal, err := suite.service.ReserveFunds(ctx, userID, goalID, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1500).Equal(goal.CurrentAmount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestReserveFunds_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.ReserveFundsRequest{AccountID: uuid.NewString(), Amount: decimal.NewFromInt(-10)}

	goal, err := suite.service.ReserveFunds(ctx, uuid.NewString(), uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReserveFunds")
}

func (suite *GoalServiceTestSuite) TestReserveFunds_InsufficientBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	goalID := uuid.NewString()
	req := dto.ReserveFundsRequest{AccountID: uuid.NewString(), Amount: decimal.NewFromInt(100000)}

	suite.mockRepo.On("ReserveFunds", ctx, userID, goalID, req.AccountID, req.Amount, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInsufficientBalance).Once()

	goal, err := suite.service.ReserveFunds(ctx, userID, goalID, req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	userID := uuid.NewString()
	goalID := uuid.NewString()
	stored := &domain.Goal{GoalID: goalID, UserID: userID, TargetAmount: decimal.NewFromInt(100)}
	negative := decimal.NewFromInt(-5)
	req := dto.UpdateGoalRequest{TargetAmount: &negative}

	suite.mockRepo.On("FindGoalByID", ctx, userID, goalID).Return(stored, nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, userID, goalID, req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateGoal")
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
