package repositories

import (
	"context"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
)

// BillReader defines read operations for upcoming bill data
type BillReader interface {
	// FindBillByID retrieves a specific bill owned by the user.
	FindBillByID(ctx context.Context, userID string, billID string) (*domain.UpcomingBill, error)

	// ListBills retrieves every bill owned by the user, soonest due first.
	ListBills(ctx context.Context, userID string) ([]domain.UpcomingBill, error)
}

// BillWriter defines write operations for upcoming bill data
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.UpcomingBill) error

	// UpdateBill updates an existing bill's details.
	UpdateBill(ctx context.Context, bill domain.UpcomingBill) error

	// DeleteBill removes a bill owned by the user.
	DeleteBill(ctx context.Context, userID string, billID string) error
}

// BillPaymentSupport defines the payment operation, which settles a bill
// against an account.
type BillPaymentSupport interface {
	// MarkBillPaid marks the bill paid, debits the account by the bill amount
	// and records the matching expense transaction, atomically. The created
	// transaction is returned.
	MarkBillPaid(ctx context.Context, userID string, billID string, accountID string, paidBy string, now time.Time) (*domain.Transaction, error)
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
	BillPaymentSupport
}
