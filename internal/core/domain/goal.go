package domain

import (
	"github.com/shopspring/decimal"
)

// GoalPriority orders goals on the dashboard.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// Goal is a savings target. Progress is current/target; money reaches
// CurrentAmount only through reserve operations that debit an account.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Priority      GoalPriority    `json:"priority"`
	AuditFields
}
