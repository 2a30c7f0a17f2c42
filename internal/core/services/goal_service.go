package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/shopspring/decimal"
)

// goalServiceImpl implements the GoalSvcFacade interface
type goalServiceImpl struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal service
func NewGoalService(repo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalServiceImpl{goalRepo: repo}
}

var _ portssvc.GoalSvcFacade = (*goalServiceImpl)(nil)

func (s *goalServiceImpl) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Priority:      priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalServiceImpl) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalServiceImpl) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalServiceImpl) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

func (s *goalServiceImpl) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		}
		return err
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// ReserveFunds moves money from an account into the goal's current amount.
func (s *goalServiceImpl) ReserveFunds(ctx context.Context, userID string, goalID string, req dto.ReserveFundsRequest) (*domain.Goal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.ReserveFunds(ctx, userID, goalID, req.AccountID, req.Amount, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogError(ctx, err, "Failed to reserve funds",
				slog.String("goal_id", goalID),
				slog.String("account_id", req.AccountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Funds reserved",
		slog.String("goal_id", goalID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", req.Amount.String()))
	return goal, nil
}
