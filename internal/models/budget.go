package models

import (
	"github.com/shopspring/decimal"
)

// Budget is the budgets table row. category_id is nullable.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	Amount     decimal.Decimal `db:"amount"`
	CategoryID string          `db:"category_id"`
	Period     string          `db:"period"`
	AuditFields
}
