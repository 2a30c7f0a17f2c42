package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// GoalReaderSvc defines read operations for savings goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves a specific goal owned by the user.
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)

	// ListGoals retrieves every goal owned by the user.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations for savings goal data
type GoalWriterSvc interface {
	// CreateGoal persists a new goal with a zero current amount.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes a goal owned by the user.
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// ReserveFunds moves money from an account into the goal's current amount.
	ReserveFunds(ctx context.Context, userID string, goalID string, req dto.ReserveFundsRequest) (*domain.Goal, error)
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
