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

// MockBillRepository is a mock type for the BillRepositoryFacade interface
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, userID string, billID string) (*domain.UpcomingBill, error) {
	args := m.Called(ctx, userID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpcomingBill), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, userID string) ([]domain.UpcomingBill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingBill), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.UpcomingBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill domain.UpcomingBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, userID string, billID string) error {
	args := m.Called(ctx, userID, billID)
	return args.Error(0)
}

func (m *MockBillRepository) MarkBillPaid(ctx context.Context, userID string, billID string, accountID string, paidBy string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, billID, accountID, paidBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type BillServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockBillRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBillRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewBillService(suite.mockRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:       "Electricity",
		Amount:     decimal.NewFromFloat(180.40),
		DueDate:    time.Now().AddDate(0, 0, 10),
		CategoryID: categoryID,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, userID, categoryID).
		Return(&domain.ExpenseCategory{CategoryID: categoryID, UserID: userID, Name: "Utilities"}, nil).Once()
	suite.mockRepo.On("SaveBill", ctx, mock.MatchedBy(func(bill domain.UpcomingBill) bool {
		return bill.UserID == userID && bill.Name == "Electricity" && !bill.IsPaid
	})).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(bill.BillID)
	suite.False(bill.IsPaid)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_SkipsCategoryLookupWhenUncategorized() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:    "Rent",
		Amount:  decimal.NewFromInt(2000),
		DueDate: time.Now().AddDate(0, 1, 0),
	}

	suite.mockRepo.On("SaveBill", ctx, mock.Anything).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Empty(bill.CategoryID)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID")
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		Name:    "Bad",
		Amount:  decimal.Zero,
		DueDate: time.Now(),
	}

	bill, err := suite.service.CreateBill(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_UnknownCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:       "Internet",
		Amount:     decimal.NewFromInt(120),
		DueDate:    time.Now(),
		CategoryID: categoryID,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	bill, err := suite.service.CreateBill(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillServiceTestSuite) TestUpdateBill_RejectsPaidBill() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()
	newName := "Renamed"
	stored := &domain.UpcomingBill{
		BillID: billID,
		UserID: userID,
		Name:   "Gym",
		Amount: decimal.NewFromInt(90),
		IsPaid: true,
	}

	suite.mockRepo.On("FindBillByID", ctx, userID, billID).Return(stored, nil).Once()

	bill, err := suite.service.UpdateBill(ctx, userID, billID, dto.UpdateBillRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateBill")
}

func (suite *BillServiceTestSuite) TestUpdateBill_MergesProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()
	newAmount := decimal.NewFromInt(210)
	stored := &domain.UpcomingBill{
		BillID:  billID,
		UserID:  userID,
		Name:    "Electricity",
		Amount:  decimal.NewFromInt(180),
		DueDate: time.Now().AddDate(0, 0, 5),
	}

	suite.mockRepo.On("FindBillByID", ctx, userID, billID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateBill", ctx, mock.MatchedBy(func(bill domain.UpcomingBill) bool {
		return bill.Name == "Electricity" && bill.Amount.Equal(newAmount)
	})).Return(nil).Once()

	bill, err := suite.service.UpdateBill(ctx, userID, billID, dto.UpdateBillRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(newAmount.Equal(bill.Amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_ReturnsBillAndTransaction() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()
	accountID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(180),
	}
	paidBill := &domain.UpcomingBill{
		BillID: billID,
		UserID: userID,
		Name:   "Electricity",
		Amount: decimal.NewFromInt(180),
		IsPaid: true,
	}

	suite.mockRepo.On("MarkBillPaid", ctx, userID, billID, accountID, userID, mock.AnythingOfType("time.Time")).
		Return(txn, nil).Once()
	suite.mockRepo.On("FindBillByID", ctx, userID, billID).Return(paidBill, nil).Once()

	bill, paymentTxn, err := suite.service.PayBill(ctx, userID, billID, dto.PayBillRequest{AccountID: accountID})

	suite.Require().NoError(err)
	suite.True(bill.IsPaid)
	suite.Equal(txn.TransactionID, paymentTxn.TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_InsufficientBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("MarkBillPaid", ctx, userID, billID, accountID, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInsufficientBalance).Once()

	bill, txn, err := suite.service.PayBill(ctx, userID, billID, dto.PayBillRequest{AccountID: accountID})

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBillByID")
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
