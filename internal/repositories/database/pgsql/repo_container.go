package pgsql

import (
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	categoryRepo := newPgxCategoryRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool, accountRepo)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	investmentTypeRepo := newPgxInvestmentTypeRepository(dbPool)
	billRepo := newPgxBillRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		TransactionRepo:    transactionRepo,
		CategoryRepo:       categoryRepo,
		GoalRepo:           goalRepo,
		InvestmentRepo:     investmentRepo,
		InvestmentTypeRepo: investmentTypeRepo,
		BillRepo:           billRepo,
		BudgetRepo:         budgetRepo,
		UserRepo:           userRepo,
	}
}
