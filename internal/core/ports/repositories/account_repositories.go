package repositories

import (
	"context"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account owned by the user.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account owned by the user.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountBalanceSupport defines balance mutation operations used by other flows.
// Balance writes always happen inside a transaction together with the row that
// explains them (a transaction entry, an adjustment, a goal reserve, a bill payment).
type AccountBalanceSupport interface {
	// FindAccountByIDForUpdate selects an account and locks it within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountID string) (*domain.Account, error)

	// ApplyBalanceChangeInTx adds delta (signed) to an account's balance within a transaction.
	ApplyBalanceChangeInTx(ctx context.Context, tx pgx.Tx, userID string, accountID string, delta decimal.Decimal, updatedBy string, now time.Time) error

	// AdjustBalance sets an account's balance to newBalance and records an
	// adjustment row with the old and new values, atomically.
	AdjustBalance(ctx context.Context, userID string, accountID string, newBalance decimal.Decimal, reason string, adjustedBy string, now time.Time) (*domain.BalanceAdjustment, error)

	// ListAdjustments retrieves the adjustment history for an account, newest first.
	ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
