package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a specific budget owned by the user.
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves every budget owned by the user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudget updates an existing budget's details.
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget owned by the user.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
