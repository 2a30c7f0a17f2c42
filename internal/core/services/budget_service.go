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
)

// budgetServiceImpl implements the BudgetSvcFacade interface
type budgetServiceImpl struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewBudgetService creates a new budget service
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.BudgetSvcFacade {
	return &budgetServiceImpl{
		budgetRepo:   repo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetServiceImpl)(nil)

func (s *budgetServiceImpl) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.CategoryID)
			}
			return nil, err
		}
	}

	period := req.Period
	if period == "" {
		period = "monthly"
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		Period:     period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

func (s *budgetServiceImpl) GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget", slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetServiceImpl) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetServiceImpl) UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		budget.Name = *req.Name
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, *req.CategoryID)
				}
				return nil, err
			}
		}
		budget.CategoryID = *req.CategoryID
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated", slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetServiceImpl) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		}
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
