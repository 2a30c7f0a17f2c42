package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/core/services"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// anyCtx matches the errgroup's derived context inside the snapshot fan-out.
var anyCtx = mock.Anything

var errFetchFailed = errors.New("fetch failed")

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockCategoryRepo    *MockCategoryRepository
	mockGoalRepo        *MockGoalRepository
	mockInvestmentRepo  *MockInvestmentRepository
	mockTypeRepo        *MockInvestmentTypeRepository
	mockBillRepo        *MockBillRepository
	mockBudgetRepo      *MockBudgetRepository
	service             portssvc.ReportingService
	userID              string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.mockTypeRepo = new(MockInvestmentTypeRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.userID = uuid.NewString()

	suite.service = services.NewReportingService(portsrepo.RepositoryProvider{
		AccountRepo:        suite.mockAccountRepo,
		TransactionRepo:    suite.mockTransactionRepo,
		CategoryRepo:       suite.mockCategoryRepo,
		GoalRepo:           suite.mockGoalRepo,
		InvestmentRepo:     suite.mockInvestmentRepo,
		InvestmentTypeRepo: suite.mockTypeRepo,
		BillRepo:           suite.mockBillRepo,
		BudgetRepo:         suite.mockBudgetRepo,
	})
}

// expectSnapshot wires every collection fetch behind the snapshot fan-out.
func (suite *ReportingServiceTestSuite) expectSnapshot(snap domain.Snapshot) {
	suite.mockAccountRepo.On("ListAccounts", anyCtx, suite.userID).Return(snap.Accounts, nil).Once()
	suite.mockTransactionRepo.On("FindAllTransactions", anyCtx, suite.userID).Return(snap.Transactions, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", anyCtx, suite.userID).Return(snap.Categories, nil).Once()
	suite.mockGoalRepo.On("ListGoals", anyCtx, suite.userID).Return(snap.Goals, nil).Once()
	suite.mockInvestmentRepo.On("ListInvestments", anyCtx, suite.userID).Return(snap.Investments, nil).Once()
	suite.mockTypeRepo.On("ListInvestmentTypes", anyCtx).Return(snap.InvestmentTypes, nil).Once()
	suite.mockBillRepo.On("ListBills", anyCtx, suite.userID).Return(snap.Bills, nil).Once()
	suite.mockBudgetRepo.On("ListBudgets", anyCtx, suite.userID).Return(snap.Budgets, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestSummary_ComputesHeadlineFigures() {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.expectSnapshot(domain.Snapshot{
		Accounts: []domain.Account{
			{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(3000)},
			{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(2000)},
		},
		Investments: []domain.Investment{
			{InvestmentID: uuid.NewString(), UserID: suite.userID, TotalInvested: decimal.NewFromInt(5000)},
		},
		Transactions: []domain.Transaction{
			{TransactionType: domain.Income, Amount: decimal.NewFromInt(4000), Date: now},
			{TransactionType: domain.Expense, Amount: decimal.NewFromInt(1500), Date: now},
			// Previous month; must not leak into the current month's figures.
			{TransactionType: domain.Expense, Amount: decimal.NewFromInt(900), Date: now.AddDate(0, -1, 0)},
		},
	})

	report, err := suite.service.Summary(context.Background(), suite.userID, now)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5000).Equal(report.TotalBalance))
	suite.True(decimal.NewFromInt(5000).Equal(report.TotalInvested))
	suite.True(decimal.NewFromInt(10000).Equal(report.NetWorth))
	suite.True(decimal.NewFromInt(4000).Equal(report.MonthlyIncome))
	suite.True(decimal.NewFromInt(1500).Equal(report.MonthlyExpenses))
	suite.True(decimal.NewFromInt(2500).Equal(report.MonthlyBalance))
	suite.True(decimal.NewFromFloat(0.5).Equal(report.InvestmentShare))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_ZeroNetWorthHasZeroShare() {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.expectSnapshot(domain.Snapshot{})

	report, err := suite.service.Summary(context.Background(), suite.userID, now)

	suite.Require().NoError(err)
	suite.True(report.InvestmentShare.IsZero())
}

func (suite *ReportingServiceTestSuite) TestExpensesByCategory_SkipsOrphanedReferences() {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	knownID := uuid.NewString()
	orphanID := uuid.NewString()
	suite.expectSnapshot(domain.Snapshot{
		Categories: []domain.ExpenseCategory{
			{CategoryID: knownID, UserID: suite.userID, Name: "Alimentação", Color: "#FF6384"},
		},
		Transactions: []domain.Transaction{
			{TransactionType: domain.Expense, Amount: decimal.NewFromInt(250), CategoryID: knownID, Date: now},
			{TransactionType: domain.Expense, Amount: decimal.NewFromInt(99), CategoryID: orphanID, Date: now},
			{TransactionType: domain.Income, Amount: decimal.NewFromInt(4000), CategoryID: "", Date: now},
		},
	})

	rows, err := suite.service.ExpensesByCategory(context.Background(), suite.userID, now)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Alimentação", rows[0].Name)
	suite.True(decimal.NewFromInt(250).Equal(rows[0].Value))
}

func (suite *ReportingServiceTestSuite) TestMonthlySeries_OldestFirst() {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.expectSnapshot(domain.Snapshot{
		Transactions: []domain.Transaction{
			{TransactionType: domain.Income, Amount: decimal.NewFromInt(100), Date: now.AddDate(0, -2, 0)},
			{TransactionType: domain.Expense, Amount: decimal.NewFromInt(40), Date: now},
		},
	})

	rows, err := suite.service.MonthlySeries(context.Background(), suite.userID, now, 3)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("May 25", rows[0].Month)
	suite.Equal("Jul 25", rows[2].Month)
	suite.True(decimal.NewFromInt(100).Equal(rows[0].Income))
	suite.True(decimal.NewFromInt(40).Equal(rows[2].Expenses))
	suite.True(decimal.NewFromInt(-40).Equal(rows[2].Balance))
}

func (suite *ReportingServiceTestSuite) TestInvestmentsByType_GroupsHoldings() {
	stocksID := uuid.NewString()
	cryptoID := uuid.NewString()
	suite.expectSnapshot(domain.Snapshot{
		InvestmentTypes: []domain.InvestmentType{
			{TypeID: stocksID, Name: "Ações"},
			{TypeID: cryptoID, Name: "Criptomoedas"},
		},
		Investments: []domain.Investment{
			{AssetTypeID: stocksID, TotalInvested: decimal.NewFromInt(3000)},
			{AssetTypeID: stocksID, TotalInvested: decimal.NewFromInt(2000)},
		},
	})

	rows, err := suite.service.InvestmentsByType(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Ações", rows[0].Name)
	suite.Equal(2, rows[0].Count)
	suite.True(decimal.NewFromInt(5000).Equal(rows[0].Value))
}

func (suite *ReportingServiceTestSuite) TestBuildSnapshot_SingleFailureFailsWhole() {
	snap := domain.Snapshot{}
	suite.mockAccountRepo.On("ListAccounts", anyCtx, suite.userID).Return(nil, errFetchFailed).Once()
	suite.mockTransactionRepo.On("FindAllTransactions", anyCtx, suite.userID).Return(snap.Transactions, nil).Maybe()
	suite.mockCategoryRepo.On("ListCategories", anyCtx, suite.userID).Return(snap.Categories, nil).Maybe()
	suite.mockGoalRepo.On("ListGoals", anyCtx, suite.userID).Return(snap.Goals, nil).Maybe()
	suite.mockInvestmentRepo.On("ListInvestments", anyCtx, suite.userID).Return(snap.Investments, nil).Maybe()
	suite.mockTypeRepo.On("ListInvestmentTypes", anyCtx).Return(snap.InvestmentTypes, nil).Maybe()
	suite.mockBillRepo.On("ListBills", anyCtx, suite.userID).Return(snap.Bills, nil).Maybe()
	suite.mockBudgetRepo.On("ListBudgets", anyCtx, suite.userID).Return(snap.Budgets, nil).Maybe()

	report, err := suite.service.Summary(context.Background(), suite.userID, time.Now())

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, errFetchFailed)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
