package repositories

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
)

// InvestmentReader defines read operations for investment data
type InvestmentReader interface {
	// FindInvestmentByID retrieves a specific investment owned by the user.
	FindInvestmentByID(ctx context.Context, userID string, investmentID string) (*domain.Investment, error)

	// ListInvestments retrieves every investment owned by the user.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment data
type InvestmentWriter interface {
	// SaveInvestment persists a new investment.
	SaveInvestment(ctx context.Context, investment domain.Investment) error

	// UpdateInvestment updates an existing investment's details.
	UpdateInvestment(ctx context.Context, investment domain.Investment) error

	// DeleteInvestment removes an investment owned by the user.
	DeleteInvestment(ctx context.Context, userID string, investmentID string) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}

// InvestmentTypeReader defines read operations for the investment type reference data
type InvestmentTypeReader interface {
	// FindInvestmentTypeByID retrieves a specific investment type.
	FindInvestmentTypeByID(ctx context.Context, typeID string) (*domain.InvestmentType, error)

	// ListInvestmentTypes retrieves all investment types.
	ListInvestmentTypes(ctx context.Context) ([]domain.InvestmentType, error)
}

// InvestmentTypeWriter defines write operations for the investment type reference data
type InvestmentTypeWriter interface {
	// SaveInvestmentType persists a new investment type.
	SaveInvestmentType(ctx context.Context, investmentType domain.InvestmentType) error
}

// InvestmentTypeRepositoryFacade combines the investment type repository interfaces
type InvestmentTypeRepositoryFacade interface {
	InvestmentTypeReader
	InvestmentTypeWriter
}
