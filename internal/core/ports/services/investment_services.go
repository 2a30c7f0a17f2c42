package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// InvestmentReaderSvc defines read operations for investment data
type InvestmentReaderSvc interface {
	// GetInvestmentByID retrieves a specific investment owned by the user.
	GetInvestmentByID(ctx context.Context, userID string, investmentID string) (*domain.Investment, error)

	// ListInvestments retrieves every investment owned by the user.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriterSvc defines write operations for investment data
type InvestmentWriterSvc interface {
	// CreateInvestment records a holding. The total invested is computed from
	// quantity and average price at save time and persisted.
	CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error)

	// UpdateInvestment updates a holding, recomputing the total invested when
	// quantity or average price change.
	UpdateInvestment(ctx context.Context, userID string, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)

	// DeleteInvestment removes a holding owned by the user.
	DeleteInvestment(ctx context.Context, userID string, investmentID string) error
}

// InvestmentTypeSvc defines operations on the investment type reference data
type InvestmentTypeSvc interface {
	// ListInvestmentTypes retrieves all investment types.
	ListInvestmentTypes(ctx context.Context) ([]domain.InvestmentType, error)

	// CreateInvestmentType adds a new investment type.
	CreateInvestmentType(ctx context.Context, req dto.CreateInvestmentTypeRequest) (*domain.InvestmentType, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
	InvestmentTypeSvc
}
