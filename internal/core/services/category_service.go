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

// defaultCategories is the set seeded for every new user.
var defaultCategories = []struct {
	Name  string
	Color string
}{
	{"Alimentação", "#FF6384"},
	{"Transporte", "#36A2EB"},
	{"Moradia", "#FFCE56"},
	{"Saúde", "#4BC0C0"},
	{"Lazer", "#9966FF"},
	{"Educação", "#FF9F40"},
	{"Outros", "#C9CBCF"},
}

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.ExpenseCategory, error) {
	now := time.Now()
	category := domain.ExpenseCategory{
		CategoryID:    uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Color:         req.Color,
		IsUserCreated: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// SeedDefaultCategories installs the default category set for a new user.
func (s *categoryServiceImpl) SeedDefaultCategories(ctx context.Context, userID string) error {
	now := time.Now()
	categories := make([]domain.ExpenseCategory, len(defaultCategories))
	for i, d := range defaultCategories {
		categories[i] = domain.ExpenseCategory{
			CategoryID:    uuid.NewString(),
			UserID:        userID,
			Name:          d.Name,
			Color:         d.Color,
			IsUserCreated: false,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.categoryRepo.SaveCategories(ctx, categories); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories", slog.String("user_id", userID))
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	s.LogInfo(ctx, "Default categories seeded", slog.String("user_id", userID), slog.Int("count", len(categories)))
	return nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.ExpenseCategory{}, nil
	}
	return categories, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
