package domain

import (
	"github.com/shopspring/decimal"
)

// Budget is a spending allowance for a period, optionally tied to a category.
// Budgets are fetched with the snapshot but no aggregate consumes them yet.
type Budget struct {
	BudgetID   string          `json:"budgetID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryID"` // Optional
	Period     string          `json:"period"`     // e.g. "monthly"
	AuditFields
}
