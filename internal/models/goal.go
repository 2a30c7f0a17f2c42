package models

import (
	"github.com/shopspring/decimal"
)

// GoalPriority mirrors domain.GoalPriority at the storage layer.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// Goal is the financial_goals table row.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Priority      GoalPriority    `db:"priority"`
	AuditFields
}
