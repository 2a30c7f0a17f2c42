package repositories

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a date-descending page of the user's
	// transactions. nextToken is an opaque cursor from a previous page; the
	// returned token is empty when no further page exists.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// FindAllTransactions retrieves every transaction owned by the user.
	// Aggregation re-scans the full history, so no cursor is involved.
	FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Every write also applies the matching balance change to the referenced
// account inside the same database transaction.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and applies balanceChange
	// (signed) to the account it references, atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChange decimal.Decimal) error

	// UpdateTransaction replaces a stored transaction, reversing the stored
	// row's balance effect and applying the new one, atomically.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and reverses its balance effect, atomically.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
