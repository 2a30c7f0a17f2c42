package dto

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string              `json:"name" binding:"required"`
	TargetAmount decimal.Decimal     `json:"targetAmount" binding:"required"`
	Priority     domain.GoalPriority `json:"priority" binding:"omitempty,oneof=high medium low"`
}

// UpdateGoalRequest defines the data allowed for updating a goal.
type UpdateGoalRequest struct {
	Name         *string              `json:"name"`
	TargetAmount *decimal.Decimal     `json:"targetAmount"`
	Priority     *domain.GoalPriority `json:"priority" binding:"omitempty,oneof=high medium low"`
}

// ReserveFundsRequest defines the data needed to move money from an account into a goal.
type ReserveFundsRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string              `json:"goalID"`
	Name          string              `json:"name"`
	TargetAmount  decimal.Decimal     `json:"targetAmount"`
	CurrentAmount decimal.Decimal     `json:"currentAmount"`
	Priority      domain.GoalPriority `json:"priority"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO
func ToGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        goal.GoalID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Priority:      goal.Priority,
	}
}

// ToListGoalsResponse converts a slice of goals to ListGoalsResponse
func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		res[i] = ToGoalResponse(&goal)
	}
	return ListGoalsResponse{Goals: res}
}
