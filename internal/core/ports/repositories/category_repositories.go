package repositories

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
)

// CategoryReader defines read operations for expense category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category owned by the user.
	FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.ExpenseCategory, error)

	// ListCategories retrieves every category owned by the user.
	ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error)
}

// CategoryWriter defines write operations for expense category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error

	// SaveCategories persists a batch of categories. Used to seed the default
	// set when a user registers.
	SaveCategories(ctx context.Context, categories []domain.ExpenseCategory) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error

	// DeleteCategory removes a category. Transactions referencing it keep their
	// category_id; nothing repairs the link.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
