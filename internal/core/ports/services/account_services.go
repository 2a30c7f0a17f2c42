package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account owned by the user.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account owned by the user.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountAdjustmentSvc defines the manual balance correction operations
type AccountAdjustmentSvc interface {
	// AdjustBalance sets an account's balance and records the correction in the
	// adjustment history.
	AdjustBalance(ctx context.Context, userID string, accountID string, req dto.AdjustBalanceRequest) (*domain.BalanceAdjustment, error)

	// ListAdjustments retrieves the adjustment history for an account, newest first.
	ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountAdjustmentSvc
}
