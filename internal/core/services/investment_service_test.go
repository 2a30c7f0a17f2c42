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

// MockInvestmentRepository is a mock type for the InvestmentRepositoryFacade interface
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, userID string, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, userID string, investmentID string) error {
	args := m.Called(ctx, userID, investmentID)
	return args.Error(0)
}

// MockInvestmentTypeRepository is a mock type for the InvestmentTypeRepositoryFacade interface
type MockInvestmentTypeRepository struct {
	mock.Mock
}

func (m *MockInvestmentTypeRepository) FindInvestmentTypeByID(ctx context.Context, typeID string) (*domain.InvestmentType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentType), args.Error(1)
}

func (m *MockInvestmentTypeRepository) ListInvestmentTypes(ctx context.Context) ([]domain.InvestmentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentType), args.Error(1)
}

func (m *MockInvestmentTypeRepository) SaveInvestmentType(ctx context.Context, investmentType domain.InvestmentType) error {
	args := m.Called(ctx, investmentType)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInvestmentRepository
	mockTypeRepo *MockInvestmentTypeRepository
	service      portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvestmentRepository)
	suite.mockTypeRepo = new(MockInvestmentTypeRepository)
	suite.service = services.NewInvestmentService(suite.mockRepo, suite.mockTypeRepo)
}

// --- Test Cases ---

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_PersistsDerivedTotal() {
	ctx := context.Background()
	userID := uuid.NewString()
	typeID := uuid.NewString()
	req := dto.CreateInvestmentRequest{
		AssetName:    "PETR4",
		AssetTypeID:  typeID,
		Quantity:     decimal.NewFromInt(100),
		AveragePrice: decimal.NewFromFloat(32.50),
	}

	suite.mockTypeRepo.On("FindInvestmentTypeByID", ctx, typeID).
		Return(&domain.InvestmentType{TypeID: typeID, Name: "Ações"}, nil).Once()
	suite.mockRepo.On("SaveInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.TotalInvested.Equal(decimal.NewFromInt(3250))
	})).Return(nil).Once()

	investment, err := suite.service.CreateInvestment(ctx, userID, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(3250).Equal(investment.TotalInvested))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_RejectsNonPositiveInputs() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{
		AssetName:    "BAD",
		AssetTypeID:  uuid.NewString(),
		Quantity:     decimal.Zero,
		AveragePrice: decimal.NewFromInt(10),
	}

	investment, err := suite.service.CreateInvestment(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestment")
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_UnknownType() {
	ctx := context.Background()
	typeID := uuid.NewString()
	req := dto.CreateInvestmentRequest{
		AssetName:    "XXXX11",
		AssetTypeID:  typeID,
		Quantity:     decimal.NewFromInt(1),
		AveragePrice: decimal.NewFromInt(100),
	}

	suite.mockTypeRepo.On("FindInvestmentTypeByID", ctx, typeID).Return(nil, apperrors.ErrNotFound).Once()

	investment, err := suite.service.CreateInvestment(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestment")
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestment_RecomputesTotalWhenQuantityChanges() {
	ctx := context.Background()
	userID := uuid.NewString()
	investmentID := uuid.NewString()
	stored := &domain.Investment{
		InvestmentID:  investmentID,
		UserID:        userID,
		AssetName:     "PETR4",
		Quantity:      decimal.NewFromInt(100),
		AveragePrice:  decimal.NewFromInt(30),
		TotalInvested: decimal.NewFromInt(3000),
	}
	newQuantity := decimal.NewFromInt(200)
	req := dto.UpdateInvestmentRequest{Quantity: &newQuantity}

	suite.mockRepo.On("FindInvestmentByID", ctx, userID, investmentID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.TotalInvested.Equal(decimal.NewFromInt(6000))
	})).Return(nil).Once()

	investment, err := suite.service.UpdateInvestment(ctx, userID, investmentID, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(6000).Equal(investment.TotalInvested))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestment_KeepsStoredTotalWhenFactorsUntouched() {
	ctx := context.Background()
	userID := uuid.NewString()
	investmentID := uuid.NewString()
	// Stored total deliberately disagrees with quantity*price; it must survive
	// a rename untouched because stored totals are authoritative.
	stored := &domain.Investment{
		InvestmentID:  investmentID,
		UserID:        userID,
		AssetName:     "Old Name",
		Quantity:      decimal.NewFromInt(100),
		AveragePrice:  decimal.NewFromInt(30),
		TotalInvested: decimal.NewFromInt(2999),
	}
	newName := "New Name"
	req := dto.UpdateInvestmentRequest{AssetName: &newName}

	suite.mockRepo.On("FindInvestmentByID", ctx, userID, investmentID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.AssetName == newName && inv.TotalInvested.Equal(decimal.NewFromInt(2999))
	})).Return(nil).Once()

	investment, err := suite.service.UpdateInvestment(ctx, userID, investmentID, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(2999).Equal(investment.TotalInvested))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestListInvestmentTypes_ReturnsAll() {
	ctx := context.Background()
	types := []domain.InvestmentType{
		{TypeID: uuid.NewString(), Name: "Ações"},
		{TypeID: uuid.NewString(), Name: "Renda Fixa"},
	}

	suite.mockTypeRepo.On("ListInvestmentTypes", ctx).Return(types, nil).Once()

	listed, err := suite.service.ListInvestmentTypes(ctx)

	suite.Require().NoError(err)
	suite.Len(listed, 2)
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
