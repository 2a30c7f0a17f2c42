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

// investmentServiceImpl implements the InvestmentSvcFacade interface
type investmentServiceImpl struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
	typeRepo       portsrepo.InvestmentTypeRepositoryFacade
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade, typeRepo portsrepo.InvestmentTypeRepositoryFacade) portssvc.InvestmentSvcFacade {
	return &investmentServiceImpl{
		investmentRepo: repo,
		typeRepo:       typeRepo,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentServiceImpl)(nil)

func (s *investmentServiceImpl) CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	if !req.Quantity.IsPositive() || !req.AveragePrice.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and average price must be positive", apperrors.ErrValidation)
	}

	if _, err := s.typeRepo.FindInvestmentTypeByID(ctx, req.AssetTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown investment type %s", apperrors.ErrValidation, req.AssetTypeID)
		}
		return nil, err
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		AssetName:    req.AssetName,
		AssetTypeID:  req.AssetTypeID,
		Quantity:     req.Quantity,
		AveragePrice: req.AveragePrice,
		// Persisted at write time; reads never recompute it.
		TotalInvested: req.Quantity.Mul(req.AveragePrice),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("investment_id", investment.InvestmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment created",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("total_invested", investment.TotalInvested.String()))
	return &investment, nil
}

func (s *investmentServiceImpl) GetInvestmentByID(ctx context.Context, userID string, investmentID string) (*domain.Investment, error) {
	investment, err := s.investmentRepo.FindInvestmentByID(ctx, userID, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment", slog.String("investment_id", investmentID))
		}
		return nil, err
	}
	return investment, nil
}

func (s *investmentServiceImpl) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.ListInvestments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	if investments == nil {
		return []domain.Investment{}, nil
	}
	return investments, nil
}

func (s *investmentServiceImpl) UpdateInvestment(ctx context.Context, userID string, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	investment, err := s.investmentRepo.FindInvestmentByID(ctx, userID, investmentID)
	if err != nil {
		return nil, err
	}

	if req.AssetName != nil {
		investment.AssetName = *req.AssetName
	}
	if req.AssetTypeID != nil {
		if _, err := s.typeRepo.FindInvestmentTypeByID(ctx, *req.AssetTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown investment type %s", apperrors.ErrValidation, *req.AssetTypeID)
			}
			return nil, err
		}
		investment.AssetTypeID = *req.AssetTypeID
	}
	if req.Quantity != nil {
		investment.Quantity = *req.Quantity
	}
	if req.AveragePrice != nil {
		investment.AveragePrice = *req.AveragePrice
	}
	if !investment.Quantity.IsPositive() || !investment.AveragePrice.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and average price must be positive", apperrors.ErrValidation)
	}

	// The stored total only moves when its factors do.
	if req.Quantity != nil || req.AveragePrice != nil {
		investment.TotalInvested = investment.Quantity.Mul(investment.AveragePrice)
	}
	investment.LastUpdatedAt = time.Now()
	investment.LastUpdatedBy = userID

	if err := s.investmentRepo.UpdateInvestment(ctx, *investment); err != nil {
		s.LogError(ctx, err, "Failed to update investment", slog.String("investment_id", investmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment updated", slog.String("investment_id", investmentID))
	return investment, nil
}

func (s *investmentServiceImpl) DeleteInvestment(ctx context.Context, userID string, investmentID string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, userID, investmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investment", slog.String("investment_id", investmentID))
		}
		return err
	}
	s.LogInfo(ctx, "Investment deleted", slog.String("investment_id", investmentID))
	return nil
}

func (s *investmentServiceImpl) ListInvestmentTypes(ctx context.Context) ([]domain.InvestmentType, error) {
	types, err := s.typeRepo.ListInvestmentTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investment types")
		return nil, fmt.Errorf("failed to list investment types: %w", err)
	}
	if types == nil {
		return []domain.InvestmentType{}, nil
	}
	return types, nil
}

func (s *investmentServiceImpl) CreateInvestmentType(ctx context.Context, req dto.CreateInvestmentTypeRequest) (*domain.InvestmentType, error) {
	investmentType := domain.InvestmentType{
		TypeID: uuid.NewString(),
		Name:   req.Name,
	}

	if err := s.typeRepo.SaveInvestmentType(ctx, investmentType); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save investment type", slog.String("type_id", investmentType.TypeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Investment type created", slog.String("type_id", investmentType.TypeID))
	return &investmentType, nil
}
