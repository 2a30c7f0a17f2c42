package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/core/services"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangeInTx(ctx context.Context, tx pgx.Tx, userID string, accountID string, delta decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, userID, accountID, delta, updatedBy, now)
	return args.Error(0)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, userID string, accountID string, newBalance decimal.Decimal, reason string, adjustedBy string, now time.Time) (*domain.BalanceAdjustment, error) {
	args := m.Called(ctx, userID, accountID, newBalance, reason, adjustedBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceAdjustment), args.Error(1)
}

func (m *MockAccountRepository) ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceAdjustment), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	opening := decimal.NewFromInt(250)
	req := dto.CreateAccountRequest{
		Name:        "Main Checking",
		AccountType: domain.Checking,
		Balance:     &opening,
		Color:       "#36A2EB",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(userID, created.UserID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(domain.Checking, created.AccountType)
	suite.True(opening.Equal(created.Balance))
	suite.Equal(userID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsBalanceToZero() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "Wallet",
		AccountType: domain.Cash,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.IsZero()
	})).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.True(created.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "Broken",
		AccountType: domain.Savings,
	}
	expectedErr := fmt.Errorf("db connection lost")

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	created, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorContains(err, "db connection lost")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, userID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, userID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_MergesProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		UserID:      userID,
		Name:        "Old Name",
		AccountType: domain.Checking,
		Balance:     decimal.NewFromInt(100),
		Color:       "#FFFFFF",
	}
	newName := "New Name"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, userID, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == newName && acc.AccountType == domain.Checking && acc.Color == "#FFFFFF"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, userID, accountID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(domain.Checking, updated.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_DelegatesToRepo() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	newBalance := decimal.NewFromFloat(1234.56)
	req := dto.AdjustBalanceRequest{NewBalance: newBalance, Reason: "bank statement sync"}
	expected := &domain.BalanceAdjustment{
		AdjustmentID: uuid.NewString(),
		AccountID:    accountID,
		OldBalance:   decimal.NewFromInt(1000),
		NewBalance:   newBalance,
		Reason:       req.Reason,
	}

	suite.mockRepo.On("AdjustBalance", ctx, userID, accountID, newBalance, req.Reason, userID, mock.AnythingOfType("time.Time")).
		Return(expected, nil).Once()

	adjustment, err := suite.service.AdjustBalance(ctx, userID, accountID, req)

	suite.Require().NoError(err)
	suite.Equal(expected.AdjustmentID, adjustment.AdjustmentID)
	suite.True(newBalance.Equal(adjustment.NewBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, userID, accountID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, userID, accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
