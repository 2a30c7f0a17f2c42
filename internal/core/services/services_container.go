package services

import (
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Category service first: user registration seeds default categories.
	container.Category = NewCategoryService(repos.CategoryRepo)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, repos.InvestmentTypeRepo)
	container.Bill = NewBillService(repos.BillRepo, repos.CategoryRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)
	container.User = NewUserService(repos.UserRepo, container.Category)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)
	container.Reporting = NewReportingService(repos)

	return container
}
