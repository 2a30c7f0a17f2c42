package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// CategoryReaderSvc defines read operations for expense category data
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category owned by the user.
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.ExpenseCategory, error)

	// ListCategories retrieves every category owned by the user.
	ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error)
}

// CategoryWriterSvc defines write operations for expense category data
type CategoryWriterSvc interface {
	// CreateCategory persists a new user-created category.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.ExpenseCategory, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.ExpenseCategory, error)

	// DeleteCategory removes a category. Transactions referencing it are left untouched.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error

	// SeedDefaultCategories installs the default category set for a new user.
	SeedDefaultCategories(ctx context.Context, userID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
