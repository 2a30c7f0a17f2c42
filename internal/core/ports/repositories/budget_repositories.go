package repositories

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget owned by the user.
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves every budget owned by the user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's details.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget owned by the user.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
