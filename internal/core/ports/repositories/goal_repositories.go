package repositories

import (
	"context"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for savings goal data
type GoalReader interface {
	// FindGoalByID retrieves a specific goal owned by the user.
	FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)

	// ListGoals retrieves every goal owned by the user.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for savings goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal owned by the user.
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}

// GoalReserveSupport defines the reserve operation, which moves money from an
// account into a goal.
type GoalReserveSupport interface {
	// ReserveFunds debits amount from the account and credits it to the goal's
	// current amount, atomically. Fails with ErrInsufficientBalance when the
	// account does not cover the amount.
	ReserveFunds(ctx context.Context, userID string, goalID string, accountID string, amount decimal.Decimal, reservedBy string, now time.Time) (*domain.Goal, error)
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
	GoalReserveSupport
}
