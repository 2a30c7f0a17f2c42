package dto

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	CategoryID string          `json:"categoryID"` // Optional
	Period     string          `json:"period" binding:"omitempty,oneof=weekly monthly yearly"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	CategoryID *string          `json:"categoryID"`
	Period     *string          `json:"period" binding:"omitempty,oneof=weekly monthly yearly"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryID,omitempty"`
	Period     string          `json:"period"`
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   budget.BudgetID,
		Name:       budget.Name,
		Amount:     budget.Amount,
		CategoryID: budget.CategoryID,
		Period:     budget.Period,
	}
}

// ToListBudgetsResponse converts a slice of budgets to ListBudgetsResponse
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		res[i] = ToBudgetResponse(&budget)
	}
	return ListBudgetsResponse{Budgets: res}
}
