package dto

import (
	"github.com/granaflow/granaflow/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create an expense category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	IsUserCreated bool   `json:"isUserCreated"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.ExpenseCategory to CategoryResponse DTO
func ToCategoryResponse(cat *domain.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Color:         cat.Color,
		IsUserCreated: cat.IsUserCreated,
	}
}

// ToListCategoriesResponse converts a slice of categories to ListCategoriesResponse
func ToListCategoriesResponse(categories []domain.ExpenseCategory) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return ListCategoriesResponse{Categories: res}
}
